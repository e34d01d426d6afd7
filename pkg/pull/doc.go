// Package pull implements the interaction engine behind "pull to refresh"
// and "pull to load more" inside a scrollable container.
//
// The engine interprets pointer events and nested-scroll deltas, decides
// whether the container or its content owns a gesture, maps drag distance
// to a damped scroll offset and drives a small state machine:
//
//	Reset ──arm──► PullFromStart ──beyond header──► ReleaseToUpdate ──release──► Updating
//	  ▲                 │                                                         │
//	  │                 └─release below threshold──► Reset                        │
//	  └──────────────────────────── OnLoadComplete ◄──────────────────────────────┘
//
// The end side mirrors this through PullFromEnd, ReleaseToLoad and Loading.
// Edges with nothing left to load route drags to an [EdgeEffect] through
// the OverScroll state instead.
//
// # Collaborators
//
// Rendering and content layout stay with the host. The engine only needs:
//
//   - [Content]: can the content still scroll toward a direction.
//   - [Indicator]: header and footer handles (size, show, hide, progress).
//   - [EdgeEffect]: rubber-band glow for overscroll.
//   - [Viewport]: where the physical scroll offset is written.
//   - [Animator]: smooth return of the offset (defaults to
//     [animation.ScrollAnimator] on the host frame loop).
//   - [Listener]: the owner's OnLoadNew / OnLoadMore hooks.
//
// Missing optional collaborators are skipped.
//
// # Threading
//
// An Engine is not safe for concurrent use. Deliver pointer events,
// nested-scroll callbacks and [animation.StepTickers] from one loop.
//
// # Loading contract
//
// Entering Updating or Loading calls the listener exactly once. The engine
// then ignores new pulls until the owner calls [Engine.OnLoadComplete].
package pull
