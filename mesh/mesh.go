package mesh

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/types"
	"github.com/notargets/gonavier/utils"
)

// CellFactory produces the initial state at an address, it is called at most
// once per address per Mesh
type CellFactory func(addr types.GridAddress) *CellData

// Stepper advances one cell by dt using only the cell's own mesh
type Stepper interface {
	Step(c Cell, dt float64) VelocityPressure
}

type entry struct {
	once    sync.Once
	cell    Cell
	failure interface{}
}

// Mesh is one time layer of an unbounded lattice. Cells are created on first
// access and kept for the life of the Mesh. Stepping never mutates a Mesh,
// it returns the next layer.
type Mesh struct {
	factory CellFactory
	spacing geometry3D.Vector
	stepper Stepper
	log     logrus.FieldLogger
	layer   int

	cells        sync.Map // types.GridAddress -> *entry
	factoryCalls atomic.Int64
}

type Option func(m *Mesh)

func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Mesh) { m.log = log }
}

func New(factory CellFactory, spacing geometry3D.Vector, stepper Stepper, opts ...Option) (m *Mesh) {
	if factory == nil {
		panic(&utils.ConfigError{Parameter: "factory", Reason: "must not be nil"})
	}
	m = &Mesh{
		factory: factory,
		spacing: spacing,
		stepper: stepper,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return
}

func NewFromCreator(cr *Creator, stepper Stepper, opts ...Option) *Mesh {
	return New(cr.Create, cr.Spacing, stepper, opts...)
}

func (m *Mesh) Spacing() geometry3D.Vector { return m.spacing }

// Layer counts the steps taken from the initial mesh
func (m *Mesh) Layer() int { return m.layer }

// FactoryCalls is the number of cells created so far
func (m *Mesh) FactoryCalls() int64 { return m.factoryCalls.Load() }

// Cell returns the cell at addr. Repeated and concurrent calls for one
// address share a single factory invocation and see the same CellData.
func (m *Mesh) Cell(addr types.GridAddress) Cell {
	v, ok := m.cells.Load(addr)
	if !ok {
		v, _ = m.cells.LoadOrStore(addr, new(entry))
	}
	e := v.(*entry)
	e.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				e.failure = r
			}
		}()
		m.factoryCalls.Inc()
		e.cell = NewCell(addr, m.factory(addr), m.Cell)
	})
	if e.failure != nil {
		panic(e.failure)
	}
	return e.cell
}

func (m *Mesh) CellAt(east, north, up int) Cell {
	return m.Cell(types.NewGridAddress(east, north, up))
}

// Cells is a snapshot of the materialized cells ordered by address
func (m *Mesh) Cells() (cells []Cell) {
	m.cells.Range(func(_, v interface{}) bool {
		if e := v.(*entry); e.cell.data != nil {
			cells = append(cells, e.cell)
		}
		return true
	})
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i].address, cells[j].address
		if a.Up != b.Up {
			return a.Up < b.Up
		}
		if a.North != b.North {
			return a.North < b.North
		}
		return a.East < b.East
	})
	return
}

// Step returns the next layer. Its cells keep the type, position, density,
// viscosity and boundary flag of this layer. Fluid velocity and pressure come
// from the stepper the first time they are read, obstacle and open cells carry
// their state across unchanged.
func (m *Mesh) Step(dt float64) *Mesh {
	if m.stepper == nil {
		panic(&utils.ConfigError{Parameter: "stepper", Reason: "mesh has no stepper"})
	}
	var (
		prior   = m
		stepper = m.stepper
	)
	next := New(func(addr types.GridAddress) *CellData {
		c := prior.Cell(addr)
		if c.Type().Canonical() != types.Fluid {
			return NewCellData(c.Type(), c.Position(), c.Velocity(), c.Pressure(),
				c.Density(), c.Viscosity(), c.IsBoundary())
		}
		return NewLazyCellData(c.Type(), c.Position(), c.Density(), c.Viscosity(), c.IsBoundary(),
			func() VelocityPressure {
				return stepper.Step(c, dt)
			})
	}, m.spacing, stepper, WithLogger(m.log))
	next.layer = m.layer + 1
	return next
}

// StepMultiple applies Step n times in sequence, each layer needs the whole prior layer
func (m *Mesh) StepMultiple(dt float64, n int) *Mesh {
	next := m
	for i := 0; i < n; i++ {
		m.log.WithFields(logrus.Fields{
			"step":  i,
			"layer": next.layer + 1,
			"dt":    dt,
		}).Info("step")
		next = next.Step(dt)
	}
	return next
}

// Evaluate materializes every address in the extents and resolves the state
// of its fluid cells, spreading East slabs over parallelDegree goroutines.
// A panic in any worker is re-raised in the caller.
func (m *Mesh) Evaluate(ext Extents, parallelDegree int) {
	var (
		pm      = utils.NewPartitionMap(parallelDegree, ext.CellsEast)
		mu      sync.Mutex
		failure interface{}
	)
	pm.ParallelRange(func(_, eMin, eMax int) {
		defer func() {
			if r := recover(); r != nil {
				mu.Lock()
				if failure == nil {
					failure = r
				}
				mu.Unlock()
			}
		}()
		for e := eMin; e < eMax; e++ {
			for n := 0; n < ext.CellsNorth; n++ {
				for u := 0; u < ext.CellsUp; u++ {
					if c := m.CellAt(e, n, u); c.Type() == types.Fluid {
						c.Data().VelocityPressure()
					}
				}
			}
		}
	})
	if failure != nil {
		panic(failure)
	}
}

type Summary struct {
	Layer      int
	FluidCells int
	Pressure   utils.Statistics
	Speed      utils.Statistics
}

// Summarize gathers pressure and speed statistics over the fluid cells in the extents
func (m *Mesh) Summarize(ext Extents) (s Summary) {
	var (
		pressure = make([]float64, 0, ext.Size())
		speed    = make([]float64, 0, ext.Size())
	)
	for u := 0; u < ext.CellsUp; u++ {
		for n := 0; n < ext.CellsNorth; n++ {
			for e := 0; e < ext.CellsEast; e++ {
				c := m.CellAt(e, n, u)
				if c.Type() != types.Fluid {
					continue
				}
				pressure = append(pressure, c.Pressure())
				speed = append(speed, c.Velocity().Norm())
			}
		}
	}
	s.Layer = m.layer
	s.FluidCells = len(pressure)
	s.Pressure = utils.NewStatistics(pressure)
	s.Speed = utils.NewStatistics(speed)
	return
}
