// Package wire is a remote host adapter for the Reflow renderer: host
// mutations are buffered as compact binary ops (varint-encoded frames)
// instead of being applied locally, and a receiving Applier replays them
// onto a real host adapter on the other side of a connection.
//
// Sender:
//
//	adapter := wire.NewAdapter()
//	container := adapter.NewContainer()
//	r := renderer.New(adapter)
//	r.Render(tree, container)
//	frame := adapter.Flush()
//
// Receiver:
//
//	applier := wire.NewApplier(localAdapter)
//	applier.Bind(container.ID(), localContainer)
//	err := applier.Apply(frame)
//
// Conn wraps a gorilla websocket connection for transporting frames as
// binary messages. Event handlers never cross the wire: a SetProp op with
// the Handler flag tells the receiver to bind delegation for that key,
// and events travel back out of band.
package wire
