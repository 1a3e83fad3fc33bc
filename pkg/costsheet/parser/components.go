package parser

import (
	"math"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/textnorm"
)

const (
	// DefaultReconcileTolerance is the largest |rate*monthlyKm - monthly| for
	// which a row is read as a per-kilometer rate.
	DefaultReconcileTolerance = 0.5
	// DefaultZeroEpsilon is the magnitude below which a resolved value is dropped.
	DefaultZeroEpsilon = 1e-6
)

// Section headers, compared against textnorm.Key of the description cell.
const (
	headerMonthlyKm         = "KMS MENSUALES"
	headerFixed             = "GASTOS FIJOS"
	headerVariable          = "GASTOS VARIABLES"
	headerTotalPrefix       = "COSTE TOTAL"
	headerPricePrefix       = "PRECIO"
	headerFleetPlanning     = "PLANIFICACION FLOTA"
	headerMarginPrefix      = "MARGEN"
	headerIndirectStructure = "ESTRUCTURA INDIRECTA"
	headerGeneralStructure  = "ESTRUCTURA GENERAL"
)

// ComponentLayout locates the columns read by the classifier inside a window.
type ComponentLayout struct {
	// Window is the region scanned on every energy worksheet.
	Window Window
	// Description is the offset of the component name column.
	Description int
	// Rate is the offset of the per-kilometer (or percentage) column.
	Rate int
	// Monthly is the offset of the monthly total column.
	Monthly int
}

// DefaultComponentLayout returns the layout of the per-energy worksheets:
// A1:H120 with description in C, rate in D and monthly total in E.
func DefaultComponentLayout() ComponentLayout {
	return ComponentLayout{
		Window:      MustWindow("A1:H120"),
		Description: 2,
		Rate:        3,
		Monthly:     4,
	}
}

// Tolerances holds the numeric thresholds of the classifier.
type Tolerances struct {
	Reconcile float64
	Epsilon   float64
}

// DefaultTolerances returns DefaultReconcileTolerance and DefaultZeroEpsilon.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Reconcile: DefaultReconcileTolerance,
		Epsilon:   DefaultZeroEpsilon,
	}
}

// State is the active section of a worksheet scan.
type State int

const (
	StateNoCategory State = iota
	StateFixed
	StateVariable
)

func (s State) String() string {
	switch s {
	case StateFixed:
		return string(models.CategoryFixed)
	case StateVariable:
		return string(models.CategoryVariable)
	default:
		return "None"
	}
}

func (s State) category() models.Category {
	if s == StateFixed {
		return models.CategoryFixed
	}
	return models.CategoryVariable
}

// Classifier turns the rows of one energy worksheet into cost components.
// It keeps the active section, the captured monthly distance and the order
// counter between calls, so rows must be fed in sheet order. Use one
// Classifier per worksheet.
type Classifier struct {
	layout    ComponentLayout
	tol       Tolerances
	state     State
	monthlyKm float64
	order     int
}

// NewClassifier creates a classifier in StateNoCategory.
func NewClassifier(layout ComponentLayout, tol Tolerances) *Classifier {
	return &Classifier{layout: layout, tol: tol}
}

// State returns the active section.
func (c *Classifier) State() State {
	return c.state
}

// MonthlyKm returns the monthly distance captured so far (0 if none).
func (c *Classifier) MonthlyKm() float64 {
	return c.monthlyKm
}

// ProcessRow consumes one row and returns the component it yields, if any.
func (c *Classifier) ProcessRow(row models.Row) (models.CostComponent, bool) {
	var desc, header string
	if cell := row.Cell(c.layout.Description); cell.Present() {
		desc = strings.TrimSpace(cell.String())
		header = textnorm.Key(desc)
	}
	monthly := row.Cell(c.layout.Monthly).FloatOrZero()

	switch {
	case header == headerMonthlyKm:
		c.monthlyKm = monthly
		return models.CostComponent{}, false
	case header == headerFixed:
		c.state = StateFixed
		return models.CostComponent{}, false
	case header == headerVariable:
		c.state = StateVariable
		return models.CostComponent{}, false
	case strings.HasPrefix(header, headerTotalPrefix):
		c.state = StateNoCategory
		return models.CostComponent{}, false
	case strings.HasPrefix(header, headerPricePrefix):
		return models.CostComponent{}, false
	case header == headerFleetPlanning,
		header == headerIndirectStructure,
		header == headerGeneralStructure:
		if monthly == 0 {
			return models.CostComponent{}, false
		}
		return c.emit(desc, models.CategoryOverhead, models.MonthlyAmount, monthly), true
	case strings.HasPrefix(header, headerMarginPrefix):
		rate := row.Cell(c.layout.Rate).FloatOrZero()
		if rate == 0 {
			return models.CostComponent{}, false
		}
		return c.emit(desc, models.CategoryOverhead, models.PercentageOverSubtotal, rate), true
	}

	if c.state == StateNoCategory || desc == "" {
		return models.CostComponent{}, false
	}

	valueType, value := models.MonthlyAmount, monthly
	if rate, ok := row.Cell(c.layout.Rate).Float(); ok && c.monthlyKm != 0 {
		if math.Abs(rate*c.monthlyKm-monthly) <= c.tol.Reconcile {
			valueType, value = models.PerKilometerRate, rate
		}
	}
	if math.Abs(value) < c.tol.Epsilon {
		return models.CostComponent{}, false
	}

	return c.emit(desc, c.state.category(), valueType, value), true
}

func (c *Classifier) emit(name string, category models.Category, valueType models.ValueType, value float64) models.CostComponent {
	comp := models.CostComponent{
		Name:       name,
		Category:   category,
		ValueType:  valueType,
		Value:      models.RoundValue(value),
		Order:      c.order,
		IsEditable: true,
	}
	c.order++
	return comp
}

// ClassifyRows runs a fresh classifier over rows and collects its components.
func ClassifyRows(rows []models.Row, layout ComponentLayout, tol Tolerances) []models.CostComponent {
	c := NewClassifier(layout, tol)
	components := make([]models.CostComponent, 0, len(rows))
	for _, row := range rows {
		if comp, ok := c.ProcessRow(row); ok {
			components = append(components, comp)
		}
	}
	return components
}
