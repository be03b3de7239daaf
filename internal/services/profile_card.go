package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

func buildProfileCardPDF(p models.Profile, now time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Registration Card", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SNM MEDICAL SEWA - REGISTRATION CARD")
	pdf.Ln(12)

	age := "-"
	if p.Age != nil {
		age = fmt.Sprintf("%d", *p.Age)
	}
	dob := "-"
	if p.DateOfBirth != nil {
		dob = *p.DateOfBirth
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Registration No : %d", p.ID),
		fmt.Sprintf("Name            : %s %s", p.Title, safe(p.Name, "-")),
		fmt.Sprintf("Role            : %s", p.Role),
		fmt.Sprintf("Email           : %s", safe(p.Email, "-")),
		fmt.Sprintf("Mobile          : %s", safe(p.Mobile, "-")),
		fmt.Sprintf("Date of Birth   : %s (age %s)", dob, age),
		fmt.Sprintf("Gender          : %s", p.Gender),
		fmt.Sprintf("Qualification   : %s", p.Qualification),
		fmt.Sprintf("Department      : %s", p.Department),
		fmt.Sprintf("Location        : %s", p.Location),
		fmt.Sprintf("Experience      : %v year(s)", p.Experience),
		fmt.Sprintf("Previous Sewa   : %s", p.PreviousSewa),
		fmt.Sprintf("Recommended By  : %s", p.RecommendedBy),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "Address: "+p.Address, "", "", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated "+utils.FormatDateTime(now)+". Please carry this card at the sewa location.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("REGISTRATION_CARD_%d_%s.pdf", p.ID, utils.SafeFilenamePart(p.Name))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
