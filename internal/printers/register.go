package printers

import (
	"errors"
	"fmt"

	"vdptrace/internal/names"
	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

var (
	// ErrUnknownKind is returned for a record kind with no registered dumper.
	ErrUnknownKind = errors.New("no dumper registered for record kind")
	// ErrUnknownCodec is returned for a codec with no registered dumper.
	ErrUnknownCodec = errors.New("no dumper registered for codec")
	// ErrKindRepeat is returned when a kind is registered twice.
	ErrKindRepeat = errors.New("record kind already registered")
)

// Dumper describes how to allocate and dump one record shape.
type Dumper struct {
	// Kind is the C type name of the record, also used as its block header.
	Kind string
	// Codecs lists the codecs whose picture info uses this shape.
	Codecs []vdp.Codec

	newRecord func() any
	accepts   func(any) bool
	dump      func(trace.Scope, any)
}

func newDumper[T any](kind string, dump func(trace.Scope, *T), codecs ...vdp.Codec) *Dumper {
	return &Dumper{
		Kind:      kind,
		Codecs:    codecs,
		newRecord: func() any { return new(T) },
		accepts: func(rec any) bool {
			_, ok := rec.(*T)
			return ok
		},
		dump: func(s trace.Scope, rec any) { dump(s, rec.(*T)) },
	}
}

// New allocates a zeroed record of the dumper's shape.
func (d *Dumper) New() any { return d.newRecord() }

// Accepts reports whether rec is a pointer to the dumper's record shape.
func (d *Dumper) Accepts(rec any) bool { return d.accepts(rec) }

// Dump renders rec, which must satisfy Accepts.
func (d *Dumper) Dump(s trace.Scope, rec any) { d.dump(s, rec) }

// Register maps record kinds and codecs to dumpers.
type Register struct {
	byKind  map[string]*Dumper
	byCodec map[vdp.Codec]*Dumper
	order   []string
}

var defaultRegister = NewRegister()

// DefaultRegister returns the register holding every dumper compiled in.
func DefaultRegister() *Register {
	return defaultRegister
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	return &Register{
		byKind:  make(map[string]*Dumper),
		byCodec: make(map[vdp.Codec]*Dumper),
	}
}

// Add registers d under its kind and codecs.
func (r *Register) Add(d *Dumper) error {
	if d == nil || d.Kind == "" {
		return errors.New("invalid dumper")
	}
	if _, exists := r.byKind[d.Kind]; exists {
		return fmt.Errorf("%w: %s", ErrKindRepeat, d.Kind)
	}
	r.byKind[d.Kind] = d
	r.order = append(r.order, d.Kind)
	for _, c := range d.Codecs {
		r.byCodec[c] = d
	}
	return nil
}

func mustAdd(r *Register, d *Dumper) {
	if err := r.Add(d); err != nil {
		panic(err)
	}
}

// ByKind returns the dumper registered for kind.
func (r *Register) ByKind(kind string) (*Dumper, error) {
	if d, ok := r.byKind[kind]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ByCodec returns the picture info dumper for codec c.
func (r *Register) ByCodec(c vdp.Codec) (*Dumper, error) {
	if d, ok := r.byCodec[c]; ok {
		return d, nil
	}
	name := names.Codec(c)
	if name == "" {
		name = fmt.Sprintf("%d", c)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
}

// ByRecord returns the dumper whose shape rec points to.
func (r *Register) ByRecord(rec any) (*Dumper, error) {
	for _, kind := range r.order {
		if d := r.byKind[kind]; d.Accepts(rec) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownKind, rec)
}

// Kinds lists registered kinds in registration order.
func (r *Register) Kinds() []string {
	return append([]string(nil), r.order...)
}
