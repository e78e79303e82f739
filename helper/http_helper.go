package helper

import (
	"errors"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"logo-lms/logger"
	"logo-lms/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	textError = `error`
	textOk    = `ok`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  interface{}
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Log        *logger.Logger
}

var (
	setupOnce  sync.Once
	translator ut.Translator
	setupErr   error
)

// NewHTTPHelper hooks the English translator and the custom tags into gin's
// validator. The setup runs once per process.
func NewHTTPHelper(log *logger.Logger) (*HTTPHelper, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("helper: gin validator is not go-playground/validator/v10")
	}
	setupOnce.Do(func() {
		translator, setupErr = registerValidation(v)
	})
	if setupErr != nil {
		return nil, setupErr
	}
	return &HTTPHelper{Validate: v, Translator: translator, Log: log}, nil
}

func registerValidation(v *validator.Validate) (ut.Translator, error) {
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role := models.Role(fl.Field().String())
		return role != models.RoleUnset && role.Valid()
	}); err != nil {
		return nil, err
	}
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}
	err := v.RegisterTranslation("role", trans,
		func(t ut.Translator) error {
			return t.Add("role", "{0} must be one of owner, student", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("role", fe.Field())
			return msg
		},
	)
	return trans, err
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	var (
		badRequest   *models.ErrorBadRequest
		unauthorized *models.ErrorUnauthorized
		forbidden    *models.ErrorForbidden
		notFound     *models.ErrorNotFound
		conflict     *models.ErrorConflict
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func codeType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "badRequest"
	case http.StatusUnauthorized:
		return "unAuthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "notFound"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "tooManyRequests"
	default:
		return "internalServerError"
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send a service error to consumers. Internal causes are logged, never returned.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		var internal *models.ErrorInternalServer
		if !errors.As(err, &internal) && u.Log != nil {
			u.Log.Error("unhandled error on %s %s", err, c.Request.Method, c.FullPath())
		}
		message = "internal server error"
	}
	u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), status, codeType(status)))
}

// SendBindError ...
// Send a binding failure: validation errors as a field map, anything else as a bad request.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		u.SendValidationError(c, verrs)
		return
	}
	u.SendBadRequest(c, "malformed request: "+err.Error(), u.EmptyJsonMap())
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.SendResponse(u.SetResponse(c, textError, message, data, http.StatusBadRequest, codeType(http.StatusBadRequest)))
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], err.Translate(u.Translator))
	}

	u.SendResponse(u.SetResponse(c, textError, errorResponse, u.EmptyJsonMap(), http.StatusBadRequest, "validationError"))
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), http.StatusUnauthorized, codeType(http.StatusUnauthorized)))
}

// SendTooManyRequests ...
func (u *HTTPHelper) SendTooManyRequests(c *gin.Context, message string) {
	u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), http.StatusTooManyRequests, codeType(http.StatusTooManyRequests)))
}

// SendResponse ...
// Send response and stop the handler chain on errors.
func (u *HTTPHelper) SendResponse(res ResponseHelper) {
	if res.Status == textError {
		res.C.AbortWithStatusJSON(res.Code, u.envelope(res))
		return
	}
	res.C.JSON(res.Code, u.envelope(res))
}

func (u *HTTPHelper) envelope(res ResponseHelper) map[string]interface{} {
	message := res.Message
	if s, ok := message.(string); ok && s == "" {
		message = `success`
	}
	return map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": message,
		"data":         res.Data,
	}
}

// SendPaged ...
// Send a list together with the paging envelope.
func (u *HTTPHelper) SendPaged(c *gin.Context, data interface{}, limit, page, totalRecord int) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"code":         http.StatusOK,
		"code_type":    "success",
		"code_message": textOk,
		"data":         data,
		"pagination":   u.GeneratePaging(c, 0, 0, limit, page, totalRecord),
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// ParseID reads a positive integer path parameter.
func (u *HTTPHelper) ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		u.SendBadRequest(c, "invalid "+name, u.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return scheme + "://" + r.Host + r.URL.Path + "?" + q.Encode()
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, prev, next, limit, page, totalRecord int) map[string]interface{} {

	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 {
		prev = page - 1
	}
	if page < totalPages {
		next = page + 1
	} else {
		next = totalPages
	}

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, prev, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, next, limit)
	}

	if totalPages >= page && page > 1 {
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	pagination := map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}

	return pagination
}
