package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"gytax/internal/domain/payroll"
	"gytax/internal/domain/vehicle"
	"gytax/internal/money"
)

const (
	labelWidth  = 110
	amountWidth = 70
	lineHeight  = 7
)

// Core PDF fonts are cp1252; these runes have no code point there.
var asciiFallback = strings.NewReplacer("→", "->", "≤", "<=", "≥", ">=")

type statement struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func newStatement(title, subtitle string) *statement {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("gytax", true)
	s := &statement{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.text(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, s.text(subtitle))
	pdf.Ln(10)
	return s
}

func (s *statement) text(value string) string {
	return s.translate(asciiFallback.Replace(value))
}

func (s *statement) section(title string) {
	s.pdf.Ln(3)
	s.pdf.SetFont("Helvetica", "B", 12)
	s.pdf.Cell(0, 8, s.text(title))
	s.pdf.Ln(8)
	s.pdf.SetFont("Helvetica", "", 11)
}

func (s *statement) row(label, amount string) {
	s.pdf.CellFormat(labelWidth, lineHeight, s.text(label), "B", 0, "L", false, 0, "")
	s.pdf.CellFormat(amountWidth, lineHeight, s.text(amount), "B", 1, "R", false, 0, "")
}

func (s *statement) total(label, amount string) {
	s.pdf.SetFont("Helvetica", "B", 11)
	s.row(label, amount)
	s.pdf.SetFont("Helvetica", "", 11)
}

func (s *statement) paragraph(value string) {
	s.pdf.MultiCell(labelWidth+amountWidth, 5, s.text(value), "", "L", false)
}

func (s *statement) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render statement")
	}
	return buf.Bytes(), nil
}

// PayrollStatement renders r as a one page take-home pay statement.
func PayrollStatement(r payroll.Result) ([]byte, error) {
	subtitle := fmt.Sprintf("Pay frequency: %s", r.FrequencyConfig.Label)
	if position := strings.TrimSpace(r.Input.Position); position != "" {
		subtitle = fmt.Sprintf("Position: %s    %s", position, subtitle)
	}
	s := newStatement("Take-home Pay Statement", subtitle)
	period := r.FrequencyConfig.PeriodLabel

	s.section("Earnings " + period)
	s.row("Basic salary", money.GYD(r.Input.BaseSalary))
	s.row("Taxable allowances", money.GYD(r.Input.TaxableAllowances))
	if r.QualificationAllowance > 0 {
		s.row("Qualification allowance", money.GYD(r.QualificationAllowance))
	}
	s.row("Non-taxable allowances", money.GYD(r.NonTaxableAllowances))
	if r.Input.OvertimeIncome > 0 {
		s.row("Overtime", money.GYD(r.Input.OvertimeIncome))
	}
	if r.Input.SecondJobIncome > 0 {
		s.row("Second job", money.GYD(r.Input.SecondJobIncome))
	}
	s.total("Gross income", money.GYD(r.GrossIncome))

	s.section("Tax reliefs")
	s.row("Personal allowance", money.GYD(r.PersonalAllowance))
	s.row("NIS contribution", money.GYD(r.Contribution))
	if r.ChildAllowance > 0 {
		s.row(fmt.Sprintf("Child allowance (%d)", r.Input.Children), money.GYD(r.ChildAllowance))
	}
	if r.OvertimeAllowance > 0 {
		s.row("Overtime exemption", money.GYD(r.OvertimeAllowance))
	}
	if r.SecondJobAllowance > 0 {
		s.row("Second job exemption", money.GYD(r.SecondJobAllowance))
	}
	if r.InsuranceDeduction > 0 {
		s.row("Insurance deduction", money.GYD(r.InsuranceDeduction))
	}
	s.total("Taxable income", money.GYD(r.TaxableIncome))

	s.section("Deductions")
	s.row("Income tax", money.GYD(r.IncomeTax))
	s.row("NIS contribution", money.GYD(r.Contribution))
	if r.InsurancePremium > 0 {
		s.row("Health insurance", money.GYD(r.InsurancePremium))
	}
	if r.Input.LoanPayment > 0 {
		s.row("Loan payment", money.GYD(r.Input.LoanPayment))
	}
	if r.Input.OtherDeduction > 0 {
		s.row("Credit union and other", money.GYD(r.Input.OtherDeduction))
	}
	s.total("Net pay "+period, money.GYD(r.NetPay))

	s.section("Gratuity and annual summary")
	s.row(fmt.Sprintf("Monthly gratuity accrual (%s%%)", money.Whole(r.Input.GratuityRate)), money.GYD(r.MonthlyGratuityAccrual))
	s.row("Six-month gratuity", money.GYD(r.SixMonthGratuity))
	s.row("Month 6 total", money.GYD(r.MonthSixTotal))
	s.row("Month 12 total", money.GYD(r.MonthTwelveTotal))
	s.row("Annual gross", money.GYD(r.AnnualGross))
	s.row("Annual income tax", money.GYD(r.AnnualTax))
	s.row("Annual NIS", money.GYD(r.AnnualContribution))
	s.row("Annual net", money.GYD(r.AnnualNet))
	s.total("Annual total package", money.GYD(r.AnnualTotal))

	return s.bytes()
}

// VehicleStatement renders r as a one page import duty breakdown.
func VehicleStatement(r vehicle.Result) ([]byte, error) {
	in := r.Input
	subtitle := fmt.Sprintf("%s, %s, %dcc, %s plate, exchange rate %s",
		in.Category, in.Fuel, in.EngineCC, in.Plate, money.Dollars(r.ExchangeRate))
	s := newStatement("Vehicle Import Duty Estimate", subtitle)

	s.section("Taxes")
	s.row("CIF value", money.USD(r.CIFUSD)+" / "+money.GYD(r.CIFGYD))
	s.row("Duty ("+money.Percent(r.DutyRate)+")", money.USD(r.DutyUSD)+" / "+money.GYD(r.DutyGYD))
	s.row("Excise ("+money.Percent(r.ExciseRate)+")", money.USD(r.ExciseUSD)+" / "+money.GYD(r.ExciseGYD))
	s.row("VAT ("+money.Percent(r.VATRate)+")", money.USD(r.VATUSD)+" / "+money.GYD(r.VATGYD))
	s.total("Total taxes", money.USD(r.TotalTaxUSD)+" / "+money.GYD(r.TotalTaxGYD))
	s.total("Total landed cost", money.USD(r.TotalCostUSD)+" / "+money.GYD(r.TotalCostGYD))

	if r.Formula != "" {
		s.section("Formula")
		s.paragraph(r.Formula)
	}
	if len(r.Notes) > 0 {
		s.section("Notes")
		for _, note := range r.Notes {
			s.paragraph("- " + note)
		}
	}
	return s.bytes()
}
