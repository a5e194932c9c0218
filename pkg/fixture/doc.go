// Package fixture builds dom documents from page descriptions.
//
// Two formats are read. Structured fixtures (YAML or JSON) list the body
// tree with explicit boxes and an optional script of events:
//
//	viewport: {width: 800}
//	body:
//	  - tag: button
//	    id: save
//	    attrs: {title: "Save the draft", data-tooltip: ""}
//	    box: {left: 100, top: 50, width: 40, height: 20}
//	events:
//	  - {target: save, type: mouseenter}
//
// HTML fixtures are ordinary markup where sized elements carry a data-box
// attribute ("left,top,width,height") and the viewport width comes from
// the viewport meta tag.
package fixture
