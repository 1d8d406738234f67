package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarises a sample of scalar values
type Statistics struct {
	Count          int
	Sum, Mean, Std float64
	Min, Max       float64
}

func NewStatistics(x []float64) (s Statistics) {
	s.Count = len(x)
	if s.Count == 0 {
		s.Mean, s.Std = math.NaN(), math.NaN()
		s.Min, s.Max = math.NaN(), math.NaN()
		return
	}
	s.Sum = floats.Sum(x)
	s.Min, s.Max = floats.Min(x), floats.Max(x)
	if s.Count == 1 {
		s.Mean = x[0]
		return
	}
	s.Mean, s.Std = stat.MeanStdDev(x, nil)
	return
}

func (s Statistics) String() string {
	return fmt.Sprintf("n=%d mean=%.6g std=%.6g min=%.6g max=%.6g",
		s.Count, s.Mean, s.Std, s.Min, s.Max)
}
