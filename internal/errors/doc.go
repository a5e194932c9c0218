// Package errors provides structured, coded errors for the tooltip module.
//
// Every failure the tooltip core can report has a registered code that maps
// to a category, a short message and a longer explanation:
//   - anchor: the element a tooltip is attached to is unusable
//   - lookup: a popup node could not be resolved to a live tooltip
//   - input: declarative options or fixtures could not be parsed
//   - config: the configuration file is invalid or unreadable
//
// None of these are fatal to the host page. The registry logs them and
// returns them to the caller; nothing panics.
//
// # Usage
//
//	err := errors.New("T002").
//	    WithDetail("anchor #save has a 0x0 box").
//	    WithSuggestion("Create the tooltip after the anchor is rendered")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T002: Anchor is not visible
//	//
//	//   anchor #save has a 0x0 box
//	//
//	//   Hint: Create the tooltip after the anchor is rendered
package errors
