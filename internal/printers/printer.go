package printers

import (
	"fmt"
	"sync"

	"vdptrace/internal/trace"
	"vdptrace/internal/vdp"
)

// Printer dumps records to a trace sink, choosing the dumper from the
// record's shape.
type Printer struct {
	sink *trace.Sink
	reg  *Register

	mu           sync.Mutex
	collectStats bool
	counts       map[string]int
}

// NewPrinter creates a printer on sink using the default register.
func NewPrinter(sink *trace.Sink) *Printer {
	return &Printer{
		sink:   sink,
		reg:    DefaultRegister(),
		counts: make(map[string]int),
	}
}

// SetRegister replaces the register used to find dumpers.
func (p *Printer) SetRegister(reg *Register) { p.reg = reg }

// Sink returns the sink the printer writes to.
func (p *Printer) Sink() *trace.Sink { return p.sink }

// Print dumps rec as one top-level record.
func (p *Printer) Print(rec any) error {
	d, err := p.reg.ByRecord(rec)
	if err != nil {
		return err
	}
	p.print(d, rec)
	return nil
}

// PrintPictureInfo dumps the picture info of a decoder created for codec.
func (p *Printer) PrintPictureInfo(codec vdp.Codec, info any) error {
	d, err := p.reg.ByCodec(codec)
	if err != nil {
		return err
	}
	if !d.Accepts(info) {
		return fmt.Errorf("picture info %T does not match %s", info, d.Kind)
	}
	p.print(d, info)
	return nil
}

func (p *Printer) print(d *Dumper, rec any) {
	p.count(d.Kind)
	if !trace.Enabled {
		return
	}
	p.sink.Record(func(s trace.Scope) { d.Dump(s, rec) })
}

func (p *Printer) count(kind string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.collectStats {
		p.counts[kind]++
	}
}

// SetCollectStats turns on per-kind record counting.
func (p *Printer) SetCollectStats() {
	p.mu.Lock()
	p.collectStats = true
	p.mu.Unlock()
}

// Count returns the number of records of kind printed since stats were enabled.
func (p *Printer) Count(kind string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[kind]
}

// PrintStats writes the per-kind record counts to the sink.
func (p *Printer) PrintStats() {
	p.mu.Lock()
	counts := make(map[string]int, len(p.counts))
	for k, v := range p.counts {
		counts[k] = v
	}
	p.mu.Unlock()

	p.sink.Record(func(s trace.Scope) {
		s.Print("Records dumped:-\n")
		for _, kind := range p.reg.Kinds() {
			s.Printf("%s : %d\n", kind, counts[kind])
		}
	})
}
