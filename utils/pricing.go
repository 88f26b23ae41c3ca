// File: /utils/pricing.go
package utils

import (
	"errors"
	"math"
)

var ErrInvalidHeadcount = errors.New("n_pessoas must be greater than zero")

// Round2 rounds a euro amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalFromPerPerson is the total of a quote priced per head.
func TotalFromPerPerson(precoPorPessoa float64, nPessoas int) (float64, error) {
	if nPessoas <= 0 {
		return 0, ErrInvalidHeadcount
	}
	return Round2(precoPorPessoa * float64(nPessoas)), nil
}

// PerPersonFromTotal is the inverse of TotalFromPerPerson.
func PerPersonFromTotal(precoTotal float64, nPessoas int) (float64, error) {
	if nPessoas <= 0 {
		return 0, ErrInvalidHeadcount
	}
	return Round2(precoTotal / float64(nPessoas)), nil
}

// PricesConsistent allows one cent of rounding drift per person.
func PricesConsistent(precoTotal, precoPorPessoa float64, nPessoas int) bool {
	if nPessoas <= 0 {
		return false
	}
	diff := math.Abs(precoTotal - precoPorPessoa*float64(nPessoas))
	return diff <= 0.01*float64(nPessoas)+1e-9
}
