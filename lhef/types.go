package lhef

import (
	"math"
	"slices"
)

// Run holds the content of the init element: beams, PDFs and the cross
// section of every process (HEPRUP common block).
type Run struct {
	// Beam particle identifiers (IDBMUP)
	BeamID [2]int
	// Beam energies in GeV (EBMUP)
	BeamEnergy [2]float64
	// PDF author groups (PDFGUP)
	PDFGroup [2]int
	// PDF set identifiers (PDFSUP)
	PDFSet [2]int
	// Event weighting strategy (IDWTUP)
	WeightStrategy int
	// Number of processes (NPRUP)
	NumProcesses int

	// Cross sections in pb (XSECUP)
	CrossSection []float64
	// Statistical errors of the cross sections (XERRUP)
	CrossSectionError []float64
	// Maximum event weights (XMAXUP)
	MaxWeight []float64
	// Process identifiers (LPRUP)
	ProcessID []int

	// Optional run information
	Info string
}

func (r Run) clone() Run {
	r.CrossSection = slices.Clone(r.CrossSection)
	r.CrossSectionError = slices.Clone(r.CrossSectionError)
	r.MaxWeight = slices.Clone(r.MaxWeight)
	r.ProcessID = slices.Clone(r.ProcessID)
	return r
}

// Event holds the content of one event element (HEPEUP common block).
type Event struct {
	// Number of particles (NUP)
	NumParticles int
	// Process identifier (IDPRUP)
	ProcessID int
	// Event weight (XWGTUP)
	Weight float64
	// Scale in GeV (SCALUP)
	Scale float64
	// QED coupling (AQEDUP)
	AlphaQED float64
	// QCD coupling (AQCDUP)
	AlphaQCD float64

	Particles []Particle

	// Optional event information
	Info string
}

type Particle struct {
	// PDG identifier (IDUP)
	ID int
	// Status code (ISTUP)
	Status int
	// 1-based indices of the mothers (MOTHUP)
	Mothers [2]int
	// Colour flow tags (ICOLUP)
	Colors [2]int
	// px, py, pz, E and m in GeV (PUP)
	Momentum [5]float64
	// Invariant lifetime in mm (VTIMUP)
	Lifetime float64
	// Cosine of the angle between spin and momentum (SPINUP)
	Spin float64
}

const (
	StatusIncoming     = -1
	StatusOutgoing     = 1
	StatusIntermediate = 2
)

func (p Particle) Pt() float64 {
	return math.Hypot(p.Momentum[0], p.Momentum[1])
}

func (p Particle) Energy() float64 {
	return p.Momentum[3]
}

func (p Particle) Mass() float64 {
	return p.Momentum[4]
}

func (p Particle) Incoming() bool {
	return p.Status == StatusIncoming
}

func (p Particle) Outgoing() bool {
	return p.Status == StatusOutgoing
}
