// Package forecast contiene el predictor de probabilidad de victoria (servicio de dominio).
//
// El modelo es una regresión logística de una variable que se re-entrena en cada llamada
// sobre cuatro puntos fijos y se descarta. Es un modelo de juguete: no hay datos reales.
package forecast

import (
	"fmt"
	"math"

	"github.com/jhoicas/bharat-chakra/internal/domain"
)

// FallbackProbability valor que se muestra cuando la predicción falla.
const FallbackProbability = 50.0

const (
	defaultC      = 1.0 // inverso de la fuerza de regularización L2
	maxIterations = 100
	tolerance     = 1e-10
)

// Datos de entrenamiento fijos.
var (
	trainingX = []float64{1, 2, 3, 4}
	trainingY = []float64{0, 0, 1, 1}
)

// LogisticModel p(y=1|x) = σ(Weight·x + Intercept).
type LogisticModel struct {
	Weight    float64
	Intercept float64
}

// Probability devuelve p(y=1|x) en [0, 1].
func (m LogisticModel) Probability(x float64) float64 {
	return sigmoid(m.Weight*x + m.Intercept)
}

// Fit ajusta la regresión logística minimizando
//
//	½·w² + C·Σ logloss(w·xᵢ + b, yᵢ)
//
// con Newton amortiguado. El intercepto no se regulariza.
func Fit(xs, ys []float64, c float64) (LogisticModel, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return LogisticModel{}, fmt.Errorf("%w: muestras vacías o de distinto tamaño", domain.ErrPredictionFailed)
	}
	if c <= 0 {
		return LogisticModel{}, fmt.Errorf("%w: C debe ser positivo", domain.ErrPredictionFailed)
	}
	if !twoClasses(ys) {
		return LogisticModel{}, fmt.Errorf("%w: se necesitan ejemplos de ambas clases", domain.ErrPredictionFailed)
	}

	objective := func(w, b float64) float64 {
		sum := 0.0
		for i := range xs {
			z := w*xs[i] + b
			sum += softplus(z) - ys[i]*z
		}
		return 0.5*w*w + c*sum
	}

	var w, b float64
	for iter := 0; iter < maxIterations; iter++ {
		gw, gb := w, 0.0
		hww, hwb, hbb := 1.0, 0.0, 0.0
		for i := range xs {
			p := sigmoid(w*xs[i] + b)
			r := p - ys[i]
			gw += c * r * xs[i]
			gb += c * r
			s := c * p * (1 - p)
			hww += s * xs[i] * xs[i]
			hwb += s * xs[i]
			hbb += s
		}
		det := hww*hbb - hwb*hwb
		if det <= 0 || isBad(det) {
			return LogisticModel{}, fmt.Errorf("%w: hessiano singular", domain.ErrPredictionFailed)
		}
		dw := (hbb*gw - hwb*gb) / det
		db := (hww*gb - hwb*gw) / det

		current := objective(w, b)
		step := 1.0
		for objective(w-step*dw, b-step*db) > current && step > 1e-8 {
			step /= 2
		}
		w -= step * dw
		b -= step * db
		if isBad(w) || isBad(b) {
			return LogisticModel{}, fmt.Errorf("%w: coeficientes no finitos", domain.ErrPredictionFailed)
		}
		if math.Abs(step*dw)+math.Abs(step*db) < tolerance {
			return LogisticModel{Weight: w, Intercept: b}, nil
		}
	}
	return LogisticModel{}, fmt.Errorf("%w: sin convergencia tras %d iteraciones", domain.ErrPredictionFailed, maxIterations)
}

// WinProbability re-entrena el modelo y devuelve la probabilidad de victoria (0–100)
// para el valor del control deslizante.
func WinProbability(feature float64) (float64, error) {
	if isBad(feature) {
		return 0, fmt.Errorf("%w: entrada no finita", domain.ErrPredictionFailed)
	}
	m, err := Fit(trainingX, trainingY, defaultC)
	if err != nil {
		return 0, err
	}
	p := m.Probability(feature) * 100
	if isBad(p) {
		return 0, fmt.Errorf("%w: probabilidad no finita", domain.ErrPredictionFailed)
	}
	return p, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// softplus log(1 + eᶻ) estable numéricamente.
func softplus(z float64) float64 {
	return math.Max(z, 0) + math.Log1p(math.Exp(-math.Abs(z)))
}

func twoClasses(ys []float64) bool {
	var zeros, ones bool
	for _, y := range ys {
		switch y {
		case 0:
			zeros = true
		case 1:
			ones = true
		default:
			return false
		}
	}
	return zeros && ones
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
