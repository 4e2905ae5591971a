// Package wizard implements the navigation core of the skincare assessment:
// the step state machine, the collected answers and the registry that maps
// each step to its screen.
//
// Forward navigation depends on the step and the payload its screen produced.
// Backward navigation is a fixed per-screen table, not a history stack, and is
// not the inverse of forward navigation.
package wizard
