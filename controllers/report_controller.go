package controllers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"paytrack/config"
	"paytrack/models"
	"paytrack/service"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

// AdminClientReport serves the DB-side aggregation report with
// filter/sort/pagination query params.
func AdminClientReport(c *gin.Context) {
	current := models.CurrentPeriod(time.Now())

	f := service.ClientReportFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		SortBy: c.Query("sort"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))
	f.OnlyDefaulter = c.Query("defaulters") == "true"
	if s := c.Query("subadmin_id"); s != "" {
		if id, err := strconv.ParseUint(s, 10, 32); err == nil {
			v := uint(id)
			f.SubAdminID = &v
		}
	}

	rows, total, err := service.NewReporter(config.DB).ClientReport(c.Request.Context(), f, current)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}

	utils.Success(c, "client report", gin.H{
		"rows":      rows,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

// AdminClientStatementPDF renders one client's payment history as a PDF.
func AdminClientStatementPDF(c *gin.Context) {
	id := c.Param("id")

	var client models.User
	if err := config.DB.Where("role = ?", models.RoleClient).First(&client, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "client not found", err)
		return
	}

	payments, err := service.StatementRows(c.Request.Context(), config.DB, client.ID, 2000)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load payments", err)
		return
	}

	current := models.CurrentPeriod(time.Now())
	sum := service.Summarize(payments, client.FixedAmount, client.TargetAmount, current)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "PayTrack Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Client: "+client.Name+" <"+client.Email+">")
	pdf.Ln(5)
	pdf.Cell(0, 6, "As of: "+current.Label())
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Approved (INR)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Target (INR)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Remaining (INR)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, formatMoney(sum.TotalApproved), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, formatMoney(sum.EffectiveTarget), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, formatMoney(sum.Remaining), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{30, 38, 26, 32, 60}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "MONTH", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "STATUS", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colW[4], 8, "NOTES", "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()
	pdf.SetTextColor(30, 30, 30)

	for i := range payments {
		p := &payments[i]
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}

		note := p.Notes
		if note == "" {
			note = p.Description
		}

		pdf.CellFormat(colW[0], 8, p.CreatedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, p.Month(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, strings.ToUpper(string(p.Status)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[3], 8, formatMoney(p.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 8, trimTo(note, 46), "1", 1, "L", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated by PayTrack - "+time.Now().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(c, http.StatusInternalServerError, "pdf build failed", err)
		return
	}

	filename := "paytrack-statement-" + id + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

func formatMoney(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	l := len(s)
	for i := 0; i < l; i++ {
		b.WriteByte(s[i])
		rem := l - i - 1
		if rem > 0 && rem%3 == 0 {
			b.WriteByte(',')
		}
	}
	return sign + b.String()
}
