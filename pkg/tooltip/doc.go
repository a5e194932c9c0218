// Package tooltip attaches positioned, dismissible popups to elements of a
// dom.Document.
//
// A Registry tracks the live tooltips of one page and owns the stacking
// counter that layers newly shown popups above older ones. Each Tooltip
// owns its popup node, the listener tokens wired to its anchor, and the
// placement logic that keeps the popup next to the anchor and inside the
// viewport.
//
// # Usage
//
//	reg := tooltip.NewRegistry(tooltip.WithLogger(logger))
//
//	tip, err := reg.Create(button, &tooltip.Options{
//	    Orientation: tooltip.OrientationBottom,
//	    ShowOn:      tooltip.ShowOnHover,
//	    Text:        "Save the draft",
//	})
//	if err != nil {
//	    // already logged; the anchor was nil, detached or invisible
//	}
//
//	tip.Show()
//	reg.DestroyAll()
//
// # Show modes
//
// ShowOn selects the events that reveal the popup: hover (mouseenter and
// mouseleave on the anchor), focus (focus and blur), load (shown at
// creation and destroyed on hide), manual (no listeners), or any other event
// name on the anchor, in which case the popup hides when it loses focus
// unless the tooltip is persistent.
//
// # Declarative setup
//
// AutoInit creates a tooltip for every element carrying a data-tooltip
// attribute, decoding the attribute as JSON Options.
package tooltip
