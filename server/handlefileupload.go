package server

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/windeesel365/slab-tax/incomeinput"
	"github.com/windeesel365/slab-tax/taxcal"
)

type IncomewithTaxResponse struct {
	TotalIncome   CustomFloat64 `json:"totalIncome"`
	Tax           CustomFloat64 `json:"tax"`
	EffectiveRate CustomFloat64 `json:"effectiveRate"`
}

func HandleFileUpload(c echo.Context) error {
	// Retrieve uploaded file จาก form-data
	file, err := c.FormFile("taxFile")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Key: taxFile is required")
	}

	//check format .csv  ไม่ใช่return error
	if !strings.HasSuffix(file.Filename, ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, "File must end with '.csv'")
	}

	if file.Filename != "taxes.csv" {
		return echo.NewHTTPError(http.StatusBadRequest, "File must be named 'taxes.csv' Please rename the file correctly then upload again.")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	csvReader := csv.NewReader(src)
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read CSV file")
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read CSV file: file is empty")
	}

	results := make([]IncomewithTaxResponse, 0, len(records)-1)

	for i, record := range records {
		if i == 0 {
			if len(record) != 1 || strings.TrimSpace(record[0]) != "totalIncome" {
				return echo.NewHTTPError(http.StatusBadRequest, "Failed to read CSV file: header pattern not matched as expected")
			}
			continue // หลังจากvalidateก็skip header เลย เพราะไม่นำคำนวน
		}
		if len(record) != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Each row must contain exactly one entry (data row %d)", i))
		}

		totalIncome, err := incomeinput.ParseIncome(record[0])
		if err != nil {
			if errors.Is(err, incomeinput.ErrNegativeIncome) {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Negative totalIncome at data row %d. Please ensure totalIncome is not negative, then process again.", i))
			}
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid totalIncome number format. Please ensure input data (data row %d) of totalIncome column correctly,then process again.", i))
		}

		tax := taxcal.CalculateTax(totalIncome)
		results = append(results, IncomewithTaxResponse{
			TotalIncome:   CustomFloat64(totalIncome),
			Tax:           CustomFloat64(tax),
			EffectiveRate: CustomFloat64(taxcal.EffectiveRate(tax, totalIncome)),
		})
	}

	//แทรก "taxes" เสริมด้านหน้า เพื่อให้ออกตรงตามแบบที่ต้องการ
	output := map[string]interface{}{
		"taxes": results,
	}

	return c.JSON(http.StatusOK, output)
}
