package lhef

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	processSize  = 4
	particleSize = 13
)

type decoder struct {
	*Fields
	body string
	elem string
	pos  Position
	err  error
}

func newDecoder(elem, body string, pos Position) *decoder {
	return &decoder{
		Fields: Tokenize(body),
		body:   body,
		elem:   elem,
		pos:    pos,
	}
}

func decodeRun(body string, pos Position) (Run, error) {
	var (
		run Run
		d   = newDecoder(initElement, body, pos)
	)
	for i := range run.BeamID {
		run.BeamID[i] = d.integer("IDBMUP", i+1)
	}
	for i := range run.BeamEnergy {
		run.BeamEnergy[i] = d.float("EBMUP", i+1)
	}
	for i := range run.PDFGroup {
		run.PDFGroup[i] = d.integer("PDFGUP", i+1)
	}
	for i := range run.PDFSet {
		run.PDFSet[i] = d.integer("PDFSUP", i+1)
	}
	run.WeightStrategy = d.integer("IDWTUP")
	run.NumProcesses = d.count("NPRUP")
	if d.err != nil {
		return run, d.err
	}

	size := d.capacity(run.NumProcesses, processSize)
	run.CrossSection = make([]float64, 0, size)
	run.CrossSectionError = make([]float64, 0, size)
	run.MaxWeight = make([]float64, 0, size)
	run.ProcessID = make([]int, 0, size)
	for i := 1; i <= run.NumProcesses && d.err == nil; i++ {
		run.CrossSection = append(run.CrossSection, d.float("XSECUP", i))
		run.CrossSectionError = append(run.CrossSectionError, d.float("XERRUP", i))
		run.MaxWeight = append(run.MaxWeight, d.float("XMAXUP", i))
		run.ProcessID = append(run.ProcessID, d.integer("LPRUP", i))
	}
	if d.err != nil {
		return run, d.err
	}
	run.Info = d.Rest()
	return run, nil
}

func decodeEvent(body string, pos Position) (*Event, error) {
	var (
		evt Event
		d   = newDecoder(eventElement, body, pos)
	)
	evt.NumParticles = d.count("NUP")
	evt.ProcessID = d.integer("IDPRUP")
	evt.Weight = d.float("XWGTUP")
	evt.Scale = d.float("SCALUP")
	evt.AlphaQED = d.float("AQEDUP")
	evt.AlphaQCD = d.float("AQCDUP")
	if d.err != nil {
		return nil, d.err
	}

	evt.Particles = make([]Particle, 0, d.capacity(evt.NumParticles, particleSize))
	for i := 1; i <= evt.NumParticles && d.err == nil; i++ {
		var p Particle
		p.ID = d.integer("IDUP", i)
		p.Status = d.integer("ISTUP", i)
		for j := range p.Mothers {
			p.Mothers[j] = d.integer("MOTHUP", i, j+1)
		}
		for j := range p.Colors {
			p.Colors[j] = d.integer("ICOLUP", i, j+1)
		}
		for j := range p.Momentum {
			p.Momentum[j] = d.float("PUP", i, j+1)
		}
		p.Lifetime = d.float("VTIMUP", i)
		p.Spin = d.float("SPINUP", i)
		evt.Particles = append(evt.Particles, p)
	}
	if d.err != nil {
		return nil, d.err
	}
	evt.Info = d.Rest()
	return &evt, nil
}

func (d *decoder) integer(field string, index ...int) int {
	if d.err != nil {
		return 0
	}
	n, err := d.Int()
	if err != nil {
		d.fail(field, index, err)
	}
	return n
}

func (d *decoder) float(field string, index ...int) float64 {
	if d.err != nil {
		return 0
	}
	n, err := d.Float()
	if err != nil {
		d.fail(field, index, err)
	}
	return n
}

func (d *decoder) count(field string) int {
	n := d.integer(field)
	if d.err == nil && n < 0 {
		d.fail(field, nil, ErrNumberFormat)
		return 0
	}
	return n
}

// capacity bounds the number of records to preallocate by what the remaining
// text could possibly hold.
func (d *decoder) capacity(n, width int) int {
	return min(n, d.Remaining()/width)
}

func (d *decoder) fail(field string, index []int, err error) {
	if len(index) > 0 {
		parts := make([]string, len(index))
		for i := range index {
			parts[i] = strconv.Itoa(index[i])
		}
		field = fmt.Sprintf("%s(%s)", field, strings.Join(parts, ","))
	}
	d.err = DecodeError{
		Position: locate(d.pos, d.body[:d.Offset()]),
		Element:  d.elem,
		Field:    field,
		Literal:  d.Last(),
		Err:      err,
	}
}

func locate(pos Position, text string) Position {
	if n := strings.Count(text, "\n"); n > 0 {
		pos.Line += n
		pos.Column = len(text) - strings.LastIndexByte(text, '\n')
		return pos
	}
	pos.Column += len(text)
	return pos
}
