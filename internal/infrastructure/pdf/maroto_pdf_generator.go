// Package pdf implémente la génération du bilan comptable en PDF.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Raison sociale + NINEA  │  BILAN + date d'édition  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ACTIF: comptes + soldes, total de section                   │
//	│  PASSIF: comptes + soldes, total de section                  │
//	│  CAPITAUX PROPRES: comptes + soldes, total de section        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÉQUATION: Actif = Passif + Capitaux propres                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	appledger "github.com/ton-entreprise/fiscalia-api/internal/application/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

// ── Palette de couleurs ───────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appledger.BalanceSheetPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implémente ledger.BalanceSheetPDFGenerator avec Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construit le générateur.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateBalanceSheetPDF génère le PDF du bilan et renvoie ses octets.
func (g *MarotoPDFGenerator) GenerateBalanceSheetPDF(
	_ context.Context,
	ws *entity.Workspace,
	sheet *entity.BalanceSheet,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bilan comptable", true).
		WithAuthor(ws.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ws))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Sections du bilan dans l'ordre de présentation comptable.
	for _, section := range []struct {
		key   string
		title string
	}{
		{entity.SectionAssets, "ACTIF"},
		{entity.SectionLiabilities, "PASSIF"},
		{entity.SectionEquity, "CAPITAUX PROPRES"},
	} {
		s, ok := sheet.Sections[section.key]
		if !ok {
			s = entity.BalanceSheetSection{Section: section.key}
		}
		m.AddRows(sectionTitleRow(section.title))
		for _, r := range sectionAccountRows(s) {
			m.AddRows(r)
		}
		m.AddRows(sectionTotalRow(section.title, s.Total))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(equationRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow : raison sociale + NINEA (gauche), titre + date d'édition (droite).
func headerRow(ws *entity.Workspace) core.Row {
	edite := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(ws.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NINEA : "+nonEmpty(ws.NINEA, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BILAN COMPTABLE", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Édité le : "+edite, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// sectionTitleRow : titre d'une section du bilan.
func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// sectionAccountRows : une ligne par compte de la section, solde en FCFA.
func sectionAccountRows(s entity.BalanceSheetSection) []core.Row {
	result := make([]core.Row, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(a.Account, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 2,
			})),
			col.New(6),
			col.New(4).Add(text.New(money.FormatFCFA(a.Balance.Abs()), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// sectionTotalRow : total de la section, aligné à droite.
func sectionTotalRow(title string, total decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Total "+title, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(6).Add(text.New(money.FormatFCFA(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// equationRow : équation comptable en pied de bilan.
func equationRow(sheet *entity.BalanceSheet) core.Row {
	eq := fmt.Sprintf("Actif %s  =  Passif %s  +  Capitaux propres %s",
		money.FormatFCFA(sheet.TotalAssets),
		money.FormatFCFA(sheet.TotalLiabilities),
		money.FormatFCFA(sheet.TotalEquity),
	)
	return row.New(12).Add(col.New(12).Add(
		text.New(eq, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center,
			Color: colorPrimary, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
