// Package dag adapts agents and tool loops to run as nodes in an external
// graph-scheduled workflow.
//
// The scheduler itself is out of scope; this package defines the node-side
// contract (inbound channels, outbound broadcast, an Action to run) plus
// in-memory channel implementations so nodes can be wired and tested
// without a scheduler. Both adapters follow the same data flow: collect
// string outputs from every upstream node, concatenate them with a blank
// line as separator into one prompt, run the agent, broadcast the answer
// downstream. A failed run broadcasts nothing; the absence of a broadcast
// is the failure signal to downstream nodes.
package dag
