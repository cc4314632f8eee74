package pdf

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

func TestGenerateCaseSheet(t *testing.T) {
	valor := decimal.RequireFromString("1234.565")
	dist := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	sheet := usecase.CaseSheet{
		Case: &entity.Case{
			ID: 1, Numero: "0001234-55.2024.8.26.0100", Status: "ATIVO",
			Descricao:        strings.Repeat("AÇÃO DE COBRANÇA ", 20),
			DataDistribuicao: &dist, Valor: &valor,
		},
		Cliente:       &entity.Client{Nome: "JOÃO DA SILVA", CPFCNPJ: "123.456.789-00"},
		Advogado:      &entity.Lawyer{Nome: "ANA SOUZA", OAB: "SP123"},
		Escritorio:    &entity.Office{Nome: "SILVA ADVOGADOS"},
		Especialidade: &entity.Specialty{Nome: "CIVIL"},
	}
	b, err := NewCaseSheetGenerator().GenerateCaseSheet(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))
}

func TestGenerateCaseSheet_SinReferencias(t *testing.T) {
	b, err := NewCaseSheetGenerator().GenerateCaseSheet(context.Background(), usecase.CaseSheet{
		Case: &entity.Case{Numero: "X-1"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))

	_, err = NewCaseSheetGenerator().GenerateCaseSheet(context.Background(), usecase.CaseSheet{})
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}
	assert.Equal(t, "—", formatMoney(nil))
	assert.Equal(t, "R$ 0,00", formatMoney(d("0")))
	assert.Equal(t, "R$ 999,90", formatMoney(d("999.9")))
	assert.Equal(t, "R$ 1.234,57", formatMoney(d("1234.565")))
	assert.Equal(t, "R$ 1.000.000,00", formatMoney(d("1000000")))
}

func TestDocument(t *testing.T) {
	assert.Equal(t, "CPF: 529.982.247-25", document("52998224725"))
	assert.Equal(t, "CNPJ: 11.222.333/0001-81", document("11222333000181"))
	assert.Equal(t, "CPF: 123.456.789-00 (dígito verificador inválido)", document("123.456.789-00"))
	assert.Equal(t, "CPF/CNPJ: —", document(""))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"ab cd", "ef"}, wrap("ab cd ef", 5))
	assert.Equal(t, []string{"abcde", "fg"}, wrap("abcdefg", 5))
	assert.Nil(t, wrap("   ", 5))
}
