package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const fontName = "Arial"

// ResumePDF lays the resume out as a single-column A4 document: a
// centered name header, the contact line, then the standard sections in
// fixed order. Missing sections are skipped.
func ResumePDF(resume map[string]any) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(true, 15)

	writeHeader(pdf, resume)
	writeSummary(pdf, resume)
	writeEducation(pdf, resume)
	writeExperience(pdf, "WORK EXPERIENCE", stringField(resume, "Work Experience"))
	writeExperience(pdf, "PROJECTS", stringField(resume, "Projects"))
	writeSkills(pdf, resume)
	writeCertificates(pdf, resume)
	writeAchievements(pdf, resume)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func stringField(resume map[string]any, key string) string {
	if v, ok := resume[key]; ok {
		if s, ok := v.(string); ok {
			return sanitizeLatin1(s)
		}
		return sanitizeLatin1(fmt.Sprintf("%v", v))
	}
	return ""
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(5)
	pdf.SetFont(fontName, "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
}

func writeHeader(pdf *fpdf.Fpdf, resume map[string]any) {
	name := stringField(resume, "Name")
	if name == "" {
		name = "CANDIDATE NAME"
	}
	pdf.SetFont(fontName, "B", 20)
	pdf.CellFormat(0, 12, strings.ToUpper(name), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	contact := stringField(resume, "Contact Info")
	if contact == "" {
		return
	}
	pdf.SetFont(fontName, "", 10)
	lines := contactLines(contact)
	// Two entries per centered line keeps the header compact.
	for i := 0; i < len(lines); i += 2 {
		line := lines[i]
		if i+1 < len(lines) {
			line += " | " + lines[i+1]
		}
		pdf.CellFormat(0, 5, line, "", 1, "C", false, 0, "")
	}
}

func writeSummary(pdf *fpdf.Fpdf, resume map[string]any) {
	summary := stringField(resume, "Summary")
	if summary == "" {
		return
	}
	sectionHeader(pdf, "PROFESSIONAL SUMMARY")
	pdf.SetFont(fontName, "", 11)
	pdf.MultiCell(0, 6, summary, "", "J", false)
}

func writeEducation(pdf *fpdf.Fpdf, resume map[string]any) {
	education := stringField(resume, "Education")
	if education == "" {
		return
	}
	sectionHeader(pdf, "EDUCATION")
	for _, entry := range strings.Split(education, "\n") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) >= 3 {
			pdf.SetFont(fontName, "B", 11)
			pdf.CellFormat(0, 6, parts[0]+" | "+parts[2], "", 1, "L", false, 0, "")
			pdf.SetFont(fontName, "", 11)
			pdf.CellFormat(0, 6, parts[1], "", 1, "L", false, 0, "")
			if len(parts) > 3 {
				pdf.CellFormat(0, 6, parts[3], "", 1, "L", false, 0, "")
			}
			pdf.Ln(2)
		} else {
			pdf.SetFont(fontName, "", 11)
			pdf.MultiCell(0, 6, entry, "", "L", false)
			pdf.Ln(2)
		}
	}
}

// writeExperience renders blank-line separated entries whose first line
// is a bold header and whose "*" lines become bullets. Work experience
// and projects share this shape.
func writeExperience(pdf *fpdf.Fpdf, title, body string) {
	if body == "" {
		return
	}
	sectionHeader(pdf, title)
	for _, entry := range strings.Split(body, "\n\n") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		lines := strings.Split(entry, "\n")
		pdf.SetFont(fontName, "B", 11)
		pdf.CellFormat(0, 6, strings.TrimSpace(lines[0]), "", 1, "L", false, 0, "")
		pdf.SetFont(fontName, "", 11)
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "*") {
				pdf.MultiCell(0, 5, "- "+strings.TrimSpace(line[1:]), "", "L", false)
			}
		}
		pdf.Ln(3)
	}
}

func writeSkills(pdf *fpdf.Fpdf, resume map[string]any) {
	skills := stringField(resume, "Skills")
	if skills == "" {
		return
	}
	sectionHeader(pdf, "TECHNICAL SKILLS")
	for _, line := range strings.Split(skills, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		category, list, found := strings.Cut(line, ":")
		if !found {
			pdf.SetFont(fontName, "", 11)
			pdf.MultiCell(0, 5, strings.TrimSpace(line), "", "L", false)
			continue
		}
		pdf.SetFont(fontName, "B", 11)
		pdf.CellFormat(0, 6, strings.TrimSpace(category)+":", "", 1, "L", false, 0, "")
		pdf.SetFont(fontName, "", 11)
		pdf.MultiCell(0, 5, "  "+strings.TrimSpace(list), "", "L", false)
		pdf.Ln(1)
	}
}

func writeCertificates(pdf *fpdf.Fpdf, resume map[string]any) {
	certificates := stringField(resume, "Certificates")
	if certificates == "" {
		return
	}
	sectionHeader(pdf, "CERTIFICATIONS")
	pdf.SetFont(fontName, "", 11)
	for _, line := range strings.Split(certificates, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			pdf.CellFormat(0, 6, "- "+line, "", 1, "L", false, 0, "")
		}
	}
}

func writeAchievements(pdf *fpdf.Fpdf, resume map[string]any) {
	info := stringField(resume, "Additional Info")
	if info == "" {
		return
	}
	sectionHeader(pdf, "ACHIEVEMENTS")
	for _, section := range strings.Split(info, "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		lines := strings.Split(section, "\n")
		first := strings.TrimSpace(lines[0])
		if first != "" && !strings.HasPrefix(first, "*") {
			pdf.SetFont(fontName, "B", 11)
			pdf.CellFormat(0, 6, first, "", 1, "L", false, 0, "")
			pdf.SetFont(fontName, "", 11)
			for _, line := range lines[1:] {
				line = strings.TrimSpace(line)
				if strings.HasPrefix(line, "*") {
					pdf.MultiCell(0, 5, "- "+strings.TrimSpace(line[1:]), "", "L", false)
				}
			}
			pdf.Ln(2)
		} else {
			pdf.SetFont(fontName, "", 11)
			pdf.MultiCell(0, 5, section, "", "L", false)
			pdf.Ln(2)
		}
	}
}
