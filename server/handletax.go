// Handle tax calculation
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/windeesel365/slab-tax/incomeinput"
	"github.com/windeesel365/slab-tax/jsonvalidate"
	"github.com/windeesel365/slab-tax/taxcal"
)

// data structure pattern ที่ user client request
type TaxRequest struct {
	TotalIncome *float64 `json:"totalIncome"`
}

type TaxLevel struct {
	Level string        `json:"level"`
	Tax   CustomFloat64 `json:"tax"`
}

type TaxResponse struct {
	TotalIncome       CustomFloat64 `json:"totalIncome"`
	StandardDeduction CustomFloat64 `json:"standardDeduction"`
	TaxableIncome     CustomFloat64 `json:"taxableIncome"`
	BaseTax           CustomFloat64 `json:"baseTax"`
	Cess              CustomFloat64 `json:"cess"`
	Tax               CustomFloat64 `json:"tax"`
	EffectiveRate     CustomFloat64 `json:"effectiveRate"`
	TaxLevel          []TaxLevel    `json:"taxLevel"`
}

func newTaxResponse(a taxcal.Assessment) TaxResponse {
	levels := make([]TaxLevel, 0, len(a.Slabs))
	for _, st := range a.Slabs {
		levels = append(levels, TaxLevel{Level: st.Slab.String(), Tax: CustomFloat64(st.Tax)})
	}
	return TaxResponse{
		TotalIncome:       CustomFloat64(a.GrossIncome),
		StandardDeduction: CustomFloat64(a.StandardDeduction),
		TaxableIncome:     CustomFloat64(a.TaxableIncome),
		BaseTax:           CustomFloat64(a.BaseTax),
		Cess:              CustomFloat64(a.Cess),
		Tax:               CustomFloat64(a.TotalTax),
		EffectiveRate:     CustomFloat64(a.EffectiveRate),
		TaxLevel:          levels,
	}
}

func HandleTaxCalculation(c echo.Context) error {
	// Read body to a variable
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}
	defer c.Request().Body.Close()

	if len(body) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide input data")
	}

	// expected key ที่ถูกต้อง เพื่อใช้ validate JSON
	expectedKeys := []string{"totalIncome"}

	count, err := jsonvalidate.JsonRootLevelKeyCount(string(body))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}
	if count != len(expectedKeys) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input format, ensure input just totalIncome")
	}
	if err := jsonvalidate.CheckJSONOrder(body, expectedKeys); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req := new(TaxRequest)
	if err := json.Unmarshal(body, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input format: "+err.Error())
	}

	// null ไม่นับเป็น 0
	if req.TotalIncome == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input format: totalIncome must be a number")
	}
	totalIncome := *req.TotalIncome

	if err := incomeinput.ValidateIncome(totalIncome); err != nil {
		if errors.Is(err, incomeinput.ErrNegativeIncome) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "The totalIncome must not be negative. Please enter a non-negative amount and try again."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, newTaxResponse(taxcal.Assess(totalIncome)))
}
