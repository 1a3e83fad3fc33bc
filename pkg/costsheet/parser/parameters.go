package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// SecondDriverThresholdKey is the parameter read from free text rather than a numeric cell.
const SecondDriverThresholdKey = "operation.secondDriverThreshold"

var firstNumber = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ParameterSource maps a store parameter key to the sheet label holding its value.
type ParameterSource struct {
	Key   string
	Label string
	// Index selects among the numeric values next to Label.
	Index int
	// FromText reads the first number embedded in the label's text value
	// instead of a numeric cell, defaulting to 0.
	FromText bool
}

// DefaultParameterSources returns the parameters of the CALCULADORA COSTES sheet in
// extraction order.
func DefaultParameterSources() []ParameterSource {
	return []ParameterSource{
		{Key: "operation.kmsPerDayDefault", Label: "KMS VEHICULO /DIA"},
		{Key: "operation.daysPerMonthDefault", Label: "DIAS MES"},
		{Key: "operation.driverSalary", Label: "SALARIO CONDUCTOR (Tabla R)"},
		{Key: "pricing.margin", Label: "MARGEN"},
		{Key: SecondDriverThresholdKey, Label: "Conductores *", FromText: true},
		{Key: "assets.trailerPrice", Label: "PRECIO SEMIRREMOLQUE", Index: 0},
		{Key: "assets.dollyPrice", Label: "PRECIO SEMIRREMOLQUE", Index: 1},
		{Key: "operation.duoConsumptionSaving", Label: "% Ahorro consumo  Duo"},
		{Key: "corridor.yardCost", Label: "COSTE TRAILER YARD/"},
		{Key: "corridor.transportCost", Label: "COSTE TRANSPORTE PLAZA"},
		{Key: "corridor.deliveriesPerMonth", Label: "Nº DESCARGAS PLAZA"},
		{Key: "corridor.duoKm", Label: "KMS CORREDOR DUO"},
		{Key: "corridor.tripsPerMonth", Label: "Nº ACARREOS VIAJE"},
		{Key: "corridor.tollKmSimple", Label: "KMS AUTOPISTA", Index: 0},
		{Key: "corridor.tollKmDuo", Label: "KMS AUTOPISTA", Index: 1},
		{Key: "corridor.tollPricePerKmSimple", Label: "PRECIO AUTOPISTA", Index: 0},
		{Key: "corridor.tollPricePerKmDuo", Label: "PRECIO AUTOPISTA", Index: 1},
		{Key: "operation.extraDriverFactor", Label: "EXTRA CONDUCTOR"},
		{Key: "emissions.priceTonCo2", Label: "PRECIO t CO2"},
		{Key: "pricing.tariffCorrectionFactor", Label: "FACTOR CORRECTOR TARIFA"},
	}
}

// ExtractParameters reads every source from table. A missing label or value
// is fatal, except for FromText sources which default to 0.
func ExtractParameters(table *LabelTable, sources []ParameterSource) ([]models.Parameter, error) {
	params := make([]models.Parameter, 0, len(sources))
	for _, src := range sources {
		var value float64
		if src.FromText {
			text, _ := table.Text(src.Label)
			value = ParseLeadingNumber(text)
		} else {
			v, err := table.Number(src.Label, src.Index)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", src.Key, err)
			}
			value = v
		}
		params = append(params, models.Parameter{Key: src.Key, Value: models.RoundValue(value)})
	}
	return params, nil
}

// ParseLeadingNumber returns the first decimal number embedded in text,
// accepting a comma as decimal separator. It returns 0 when there is none.
//
//	ParseLeadingNumber("A partir de 500 km se añade un segundo conductor") == 500
func ParseLeadingNumber(text string) float64 {
	match := firstNumber.FindString(text)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(match, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return v
}
