// Package docid reconoce y valida documentos fiscales brasileños (CPF y CNPJ)
// por su dígito verificador módulo 11.
package docid

import (
	"fmt"
	"unicode"
)

// Kind tipo de documento según la cantidad de dígitos.
type Kind string

const (
	KindUnknown Kind = ""
	KindCPF     Kind = "CPF"  // persona física, 11 dígitos
	KindCNPJ    Kind = "CNPJ" // persona jurídica, 14 dígitos
)

// pesos del módulo 11, de izquierda a derecha, para el primer y segundo dígito verificador.
var (
	cpfWeights1  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Detect clasifica el documento, con o sin puntuación ("123.456.789-09").
func Detect(doc string) Kind {
	switch len(digits(doc)) {
	case 11:
		return KindCPF
	case 14:
		return KindCNPJ
	}
	return KindUnknown
}

// Validate verifica los dos dígitos verificadores. Secuencias de un único
// dígito repetido ("111.111.111-11") se rechazan aunque cuadren.
func Validate(doc string) error {
	d := digits(doc)
	var w1, w2 []int
	switch len(d) {
	case 11:
		w1, w2 = cpfWeights1, cpfWeights2
	case 14:
		w1, w2 = cnpjWeights1, cnpjWeights2
	default:
		return fmt.Errorf("docid: se esperaban 11 (CPF) o 14 (CNPJ) dígitos, se encontraron %d", len(d))
	}
	if repeated(d) {
		return fmt.Errorf("docid: %s inválido: dígitos repetidos", Detect(doc))
	}
	n := len(w1)
	first := checkDigit(d[:n], w1)
	second := checkDigit(append(append([]byte{}, d[:n]...), first), w2)
	if d[n] != first || d[n+1] != second {
		return fmt.Errorf("docid: dígito verificador del %s inválido: esperado %c%c, recibido %c%c",
			Detect(doc), first, second, d[n], d[n+1])
	}
	return nil
}

// Format aplica la máscara oficial (000.000.000-00 / 00.000.000/0000-00).
// Un documento que no es CPF ni CNPJ se devuelve sin cambios.
func Format(doc string) string {
	d := digits(doc)
	switch len(d) {
	case 11:
		return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
	case 14:
		return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
	}
	return doc
}

func checkDigit(base []byte, weights []int) byte {
	var sum int
	for i, c := range base {
		sum += int(c-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}

func repeated(d []byte) bool {
	for _, c := range d[1:] {
		if c != d[0] {
			return false
		}
	}
	return true
}

func digits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < 0x80 {
			out = append(out, byte(r))
		}
	}
	return out
}
