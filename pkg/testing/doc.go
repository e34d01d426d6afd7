// Package testing provides a harness for exercising the pull engine
// without a host toolkit.
//
// # Quick Start
//
// Create a tester, drive a gesture and make assertions:
//
//	func TestRefresh(t *testing.T) {
//	    tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth})
//
//	    tester.Down(graphics.Offset{Y: 0})
//	    tester.Move(graphics.Offset{Y: 200})
//	    tester.Move(graphics.Offset{Y: 400})
//	    tester.Up()
//
//	    if tester.Engine.State() != pull.StateUpdating {
//	        t.Errorf("expected Updating, got %s", tester.Engine.State())
//	    }
//	}
//
// # Fakes
//
// Every collaborator of [pull.Config] has a recording fake: [FakeIndicator],
// [FakeContent], [FakeEdgeEffect], [FakeListener] and [FakePresenter].
// The tester wires them and exposes them as fields.
//
// # Animation Testing
//
// Smooth returns and deferred manual refreshes run on animation tickers.
// Control time for deterministic tests:
//
//	tester.Pump(100 * time.Millisecond)
//	tester.PumpAndSettle(time.Second)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pulltest "github.com/go-drift/pulltoload/pkg/testing"
package testing
