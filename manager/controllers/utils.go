package controllers

import (
	"app/base/utils"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const InvalidOffsetMsg = "Invalid limit or offset"

// accepts +1234567890 or 123-456-7890
var phoneRegex = regexp.MustCompile(`^(\+\d{7,15}|\d{3}-\d{3}-\d{4})$`)
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func LogAndRespError(c *gin.Context, err error, respMsg string) {
	utils.LogError("err", err.Error(), respMsg)
	c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Error: respMsg})
}

func LogWarnAndResp(c *gin.Context, code int, respMsg string) {
	utils.LogWarn(respMsg)
	c.AbortWithStatusJSON(code, utils.ErrorResponse{Error: respMsg})
}

func LogAndRespStatusError(c *gin.Context, code int, err error, msg string) {
	utils.LogError("err", err.Error(), msg)
	c.AbortWithStatusJSON(code, utils.ErrorResponse{Error: msg})
}

func LogAndRespBadRequest(c *gin.Context, err error, respMsg string) {
	utils.LogWarn("err", err.Error(), respMsg)
	c.AbortWithStatusJSON(http.StatusBadRequest, utils.ErrorResponse{Error: respMsg})
}

func LogAndRespNotFound(c *gin.Context, err error, respMsg string) {
	utils.LogWarn("err", err.Error(), respMsg)
	c.AbortWithStatusJSON(http.StatusNotFound, utils.ErrorResponse{Error: respMsg})
}

func LogAndRespConflict(c *gin.Context, err error, respMsg string) {
	utils.LogWarn("err", err.Error(), respMsg)
	c.AbortWithStatusJSON(http.StatusConflict, utils.ErrorResponse{Error: respMsg})
}

type ListMeta struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalItems int64 `json:"total_items"`
}

// maps sortable field name to its column expression
type AttrMap map[string]string

// ApplySort orders tx by the `sort` query param, `-` prefix means descending.
// A stable sort column is always appended.
func ApplySort(c *gin.Context, tx *gorm.DB, fieldExprs AttrMap, defaultSort, stableSort string) (*gorm.DB, error) {
	query := c.DefaultQuery("sort", defaultSort)
	fields := strings.Split(query, ",")

	for _, enteredField := range fields {
		if strings.HasPrefix(enteredField, "-") && fieldExprs[enteredField[1:]] != "" {
			tx = tx.Order(fmt.Sprintf("%s DESC NULLS LAST", fieldExprs[enteredField[1:]]))
		} else if fieldExprs[enteredField] != "" {
			tx = tx.Order(fmt.Sprintf("%s ASC NULLS LAST", fieldExprs[enteredField]))
		} else {
			return nil, errors.Errorf("Invalid sort field: %v", enteredField)
		}
	}
	tx = tx.Order(stableSort + " ASC")
	return tx, nil
}

func Csv(ctx *gin.Context, code int, res interface{}) {
	ctx.Status(code)
	ctx.Header("Content-Type", "text/csv")
	err := gocsv.Marshal(res, ctx.Writer)
	if err != nil {
		LogAndRespError(ctx, err, "CSV encoding error")
	}
}

func OutputExportData(c *gin.Context, data interface{}) {
	accept := c.GetHeader("Accept")
	switch {
	case strings.Contains(accept, "application/json"):
		c.JSON(http.StatusOK, data)
	case strings.Contains(accept, "text/csv"):
		Csv(c, http.StatusOK, data)
	default:
		LogWarnAndResp(c, http.StatusUnsupportedMediaType,
			fmt.Sprintf("Invalid content type '%s', use 'application/json' or 'text/csv'", accept))
	}
}

func loadCustomerID(c *gin.Context) (int64, error) {
	id, err := utils.LoadParamInt(c, "customer_id", 0, false)
	if err != nil || id <= 0 {
		err = errors.New("invalid customer_id parameter")
		LogAndRespBadRequest(c, err, "invalid customer_id parameter")
		return 0, err
	}
	return int64(id), nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRegex.MatchString(phone) {
		return errors.New("Phone must be like +1234567890 or 123-456-7890")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("Email must not be empty")
	}
	if !emailRegex.MatchString(email) {
		return errors.Errorf("Invalid email: %s", email)
	}
	return nil
}
