// Package pdf genera la ficha de una causa/proceso en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Escritório + CNPJ   │  N° do processo + Status      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + CPF/CNPJ + contato                          │
//	│  ADVOGADO: Nome + OAB                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DADOS: Especialidade | Distribuição | Valor                 │
//	│  DESCRIÇÃO                                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR com o número + data de emissão                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/pkg/docid"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dash = "—"

// CaseSheetGenerator implementa usecase.CaseSheetGenerator con Maroto v2.
type CaseSheetGenerator struct {
	now func() time.Time
}

// NewCaseSheetGenerator construye el generador.
func NewCaseSheetGenerator() *CaseSheetGenerator {
	return &CaseSheetGenerator{now: time.Now}
}

// GenerateCaseSheet genera el PDF y devuelve sus bytes.
func (g *CaseSheetGenerator) GenerateCaseSheet(_ context.Context, sheet usecase.CaseSheet) ([]byte, error) {
	if sheet.Case == nil {
		return nil, fmt.Errorf("pdf: causa vacía")
	}
	author := "Juridico"
	if sheet.Escritorio != nil && sheet.Escritorio.Nome != "" {
		author = sheet.Escritorio.Nome
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha do processo "+sheet.Case.Numero, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet.Case, sheet.Escritorio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(sheet.Cliente))
	m.AddRows(lawyerRow(sheet.Advogado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailsRow(sheet.Case, sheet.Especialidade))
	m.AddRows(descriptionRows(sheet.Case.Descricao)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sheet.Case, g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(c *entity.Case, office *entity.Office) core.Row {
	nome, cnpj := "SEM ESCRITÓRIO", dash
	if office != nil {
		nome, cnpj = office.Nome, nonEmpty(docid.Format(office.CNPJ), dash)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nome, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("CNPJ: "+cnpj, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FICHA DO PROCESSO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(c.Numero, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Status: "+nonEmpty(c.Status, dash), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func clientRow(cl *entity.Client) core.Row {
	nome, detail := "Sem cliente vinculado", ""
	if cl != nil {
		nome = cl.Nome
		detail = fmt.Sprintf("%s   |   Email: %s   |   Tel: %s",
			document(cl.CPFCNPJ), nonEmpty(cl.Email, dash), nonEmpty(cl.Telefone, dash))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nome, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func lawyerRow(l *entity.Lawyer) core.Row {
	nome := "Sem advogado responsável"
	if l != nil {
		nome = fmt.Sprintf("%s   (OAB %s)", l.Nome, nonEmpty(l.OAB, dash))
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ADVOGADO RESPONSÁVEL", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nome, props.Text{Size: 9, Top: 6}),
		),
	)
}

func detailsRow(c *entity.Case, sp *entity.Specialty) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Top: 6})
	}
	especialidade := dash
	if sp != nil {
		especialidade = sp.Nome
	}
	distribuicao := dash
	if c.DataDistribuicao != nil {
		distribuicao = c.DataDistribuicao.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(5).Add(label("ESPECIALIDADE"), value(especialidade)),
		col.New(3).Add(label("DISTRIBUIÇÃO"), value(distribuicao)),
		col.New(4).Add(
			text.New("VALOR DA CAUSA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1}),
			text.New(formatMoney(c.Valor), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6, Right: 1}),
		),
	)
}

// descriptionRows parte la descripción en líneas de hasta 110 caracteres.
func descriptionRows(desc string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DESCRIÇÃO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	if strings.TrimSpace(desc) == "" {
		desc = dash
	}
	for _, chunk := range wrap(desc, 110) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 8, Top: 0.5}),
		)))
	}
	return rows
}

func footerRow(c *entity.Case, now time.Time) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr("processo:"+c.Numero, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New(fmt.Sprintf("Processo nº %s", c.Numero), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary}),
			text.New("Emitido em "+now.Format("02/01/2006 15:04"), props.Text{Size: 8, Top: 14, Left: 3, Color: colorGray}),
			text.New("Documento de uso interno do escritório.", props.Text{Size: 7, Top: 20, Left: 3, Color: colorGray}),
		),
	)
}

// document etiqueta el documento como CPF o CNPJ y señala un dígito verificador incorrecto.
func document(doc string) string {
	kind := docid.Detect(doc)
	if kind == docid.KindUnknown {
		return "CPF/CNPJ: " + nonEmpty(doc, dash)
	}
	out := string(kind) + ": " + docid.Format(doc)
	if docid.Validate(doc) != nil {
		out += " (dígito verificador inválido)"
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato brasileño: "R$ 1.234,57"; nil => "—".
func formatMoney(v *decimal.Decimal) string {
	if v == nil {
		return dash
	}
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, ch := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, ch)
	}
	out := "R$ " + string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// wrap divide s por palabras en líneas de hasta n runas.
func wrap(s string, n int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(w) > n {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
		for len(cur) > n {
			lines = append(lines, string(cur[:n]))
			cur = append([]rune(nil), cur[n:]...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
