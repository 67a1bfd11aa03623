package wire

import (
	"testing"

	"github.com/reflow-ui/reflow/pkg/host/memdom"
	"github.com/reflow-ui/reflow/pkg/renderer"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

func TestFrameRoundTrip(t *testing.T) {
	frame := &Frame{
		Seq: 7,
		Ops: []Op{
			{Code: OpCreateElement, Node: 2, Tag: "div"},
			{Code: OpSetProp, Node: 2, Key: "id", Value: "x"},
			{Code: OpSetProp, Node: 2, Key: "onClick", Handler: true},
			{Code: OpSetElementText, Node: 2, Value: "hi"},
			{Code: OpInsert, Node: 2, Parent: 1, Anchor: 0},
			{Code: OpRemoveProp, Node: 2, Key: "id"},
			{Code: OpRemove, Node: 2},
		},
	}

	decoded, err := DecodeFrame(EncodeFrame(frame))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Seq != 7 {
		t.Errorf("Seq = %d, want 7", decoded.Seq)
	}
	if len(decoded.Ops) != len(frame.Ops) {
		t.Fatalf("ops = %d, want %d", len(decoded.Ops), len(frame.Ops))
	}
	for i, op := range decoded.Ops {
		if op != frame.Ops[i] {
			t.Errorf("op %d = %+v, want %+v", i, op, frame.Ops[i])
		}
	}
}

func TestDecodeTruncatedFrame(t *testing.T) {
	frame := &Frame{Seq: 1, Ops: []Op{{Code: OpCreateElement, Node: 1, Tag: "div"}}}
	data := EncodeFrame(frame)

	if _, err := DecodeFrame(data[:len(data)-2]); err == nil {
		t.Error("truncated frame should fail to decode")
	}
}

func TestDecodeRejectsHugeOpCount(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(1)
	e.WriteUvarint(MaxOpsPerFrame + 1)

	if _, err := DecodeFrame(e.Bytes()); err != ErrFrameTooLarge {
		t.Errorf("err = %v, want ErrFrameTooLarge", err)
	}
}

// TestRenderReplayEquivalence renders a tree through the wire adapter,
// replays the frames onto a memdom host, and checks the result matches a
// direct memdom render.
func TestRenderReplayEquivalence(t *testing.T) {
	build := func(swap bool) *vdom.VNode {
		a := vdom.Li(vdom.Key("a"), "a")
		b := vdom.Li(vdom.Key("b"), "b")
		items := []any{a, b}
		if swap {
			items = []any{b, a}
		}
		return vdom.Div(vdom.ID("app"),
			vdom.Ul(items...),
			vdom.P("tail"),
		)
	}

	// Remote side: render through the wire.
	remote := NewAdapter()
	remoteContainer := remote.NewContainer()
	rr := renderer.New(remote)

	// Local side: replay onto memdom.
	local := memdom.New()
	localContainer := local.NewContainer()
	applier := NewApplier(local)
	applier.Bind(remoteContainer.ID(), localContainer)

	// Reference: direct memdom render.
	ref := memdom.New()
	refContainer := ref.NewContainer()
	renderer.New(ref).Render(build(false), refContainer)

	rr.Render(build(false), remoteContainer)
	if err := applier.Apply(remote.Flush()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if localContainer.String() != refContainer.String() {
		t.Errorf("replayed tree =\n%s\nwant\n%s", localContainer.String(), refContainer.String())
	}

	// Second pass: keyed swap travels as a move frame.
	rr.Render(build(true), remoteContainer)
	frame := remote.Flush()
	if frame == nil {
		t.Fatal("expected a second frame")
	}
	if err := applier.Apply(frame); err != nil {
		t.Fatalf("apply: %v", err)
	}

	ul := localContainer.Children[0].Children[0]
	if ul.Children[0].Text != "b" || ul.Children[1].Text != "a" {
		t.Errorf("replayed order wrong:\n%s", localContainer.String())
	}
}

func TestApplierUnknownNode(t *testing.T) {
	local := memdom.New()
	applier := NewApplier(local)

	frame := &Frame{Seq: 1, Ops: []Op{{Code: OpRemove, Node: 42}}}
	if err := applier.ApplyFrame(frame); err == nil {
		t.Error("unknown node reference should error")
	}
}

func TestHandlerCrossesAsStub(t *testing.T) {
	remote := NewAdapter()
	container := remote.NewContainer()
	r := renderer.New(remote)

	local := memdom.New()
	localContainer := local.NewContainer()
	applier := NewApplier(local)
	applier.Bind(container.ID(), localContainer)

	r.Render(vdom.Button(vdom.OnClick(func() {}), "go"), container)
	if err := applier.Apply(remote.Flush()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	btn := localContainer.Children[0]
	stub, ok := btn.Handlers["onClick"].(HandlerStub)
	if !ok {
		t.Fatalf("handler = %T, want HandlerStub", btn.Handlers["onClick"])
	}
	if stub.Key != "onClick" {
		t.Errorf("stub key = %q, want onClick", stub.Key)
	}
}

func TestFlushEmptyReturnsNil(t *testing.T) {
	a := NewAdapter()
	if frame := a.Flush(); frame != nil {
		t.Errorf("Flush() = %v, want nil", frame)
	}
}

func TestFlushSequenceIncrements(t *testing.T) {
	a := NewAdapter()
	a.CreateElement("div")
	f1, _ := DecodeFrame(a.Flush())
	a.CreateElement("span")
	f2, _ := DecodeFrame(a.Flush())

	if f1.Seq != 1 || f2.Seq != 2 {
		t.Errorf("seqs = %d, %d, want 1, 2", f1.Seq, f2.Seq)
	}
}
