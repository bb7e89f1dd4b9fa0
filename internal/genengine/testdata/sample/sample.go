// Package sample is fixture data for genengine's orchestrator tests: a
// handful of small types exercising the Write/Read Emitter dispatch rules
// end to end through a real go/packages load.
package sample

import "github.com/genpack/genpack/runtime/wire"

//genpack:serialize
type Point struct {
	X int32
	Y int32
}

//genpack:serialize
type Wrapper struct {
	Label    string
	Tag      *int32
	Data     []byte
	Children []int32
}

type Color int32

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
)

//genpack:serialize
type Shape struct {
	Fill Color
}

//genpack:serialize
type Base struct {
	ID string
}

//genpack:serialize
type Derived struct {
	Base
	Extra int32
}

//genpack:serialize
type BadShape struct {
	Anything any
}

//genpack:serialize
type Handwritten struct {
	Value int32
}

func (v *Handwritten) Pack(w *wire.Writer) error {
	return w.WriteInt32(v.Value * 2)
}

func (v *Handwritten) Unpack(r *wire.Reader) error {
	raw, err := r.ReadInt32()
	if err != nil {
		return err
	}
	v.Value = raw / 2
	return nil
}
