// Package sim implements the black hole toy's update core: inverse-square
// attraction of a fixed particle population toward one or more black
// holes, respawn-on-capture at the event horizon, toroidal wrapping,
// pairwise hole merging and the transient merge waves.
//
// The [World] is stepped once per rendered frame and owns every live
// collection; nothing here touches a rendering or input framework. The
// GUI and TUI layers feed it an [Input] digest and read the collections
// back for drawing. [Runner] drives a world headlessly for the CLI.
package sim
