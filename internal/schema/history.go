package schema

import (
	"net/http"
	"sync"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/tools/converting"
)

type Key string

const (
	OperationKey Key = "mixvelOperation"
)

type OperationName string

const (
	Auth          OperationName = "auth"
	AirShopping   OperationName = "airShopping"
	OrderCreate   OperationName = "orderCreate"
	OrderRetrieve OperationName = "orderRetrieve"
	OrderChange   OperationName = "orderChange"
	OrderCancel   OperationName = "orderCancel"
)

// Exchange is one recorded request/response round trip. The password and
// token of a login exchange are redacted.
type Exchange struct {
	Operation       OperationName
	StartDateTime   time.Time
	Duration        time.Duration
	Method          string
	URL             string
	RequestBody     string
	RequestHeaders  map[string][]string
	StatusCode      int
	ResponseBody    string
	ResponseHeaders map[string][]string
}

// ExchangesBucket collects the exchanges of a client in the order they finished.
type ExchangesBucket struct {
	exchanges []Exchange
	sync.Mutex
}

func NewExchangesBucket() *ExchangesBucket {
	return &ExchangesBucket{
		exchanges: []Exchange{},
	}
}

func (b *ExchangesBucket) FinishedRequest(
	operation OperationName,
	startTime time.Time,
	statusCode int,
	method string,
	url string,
	requestBody string,
	requestHeaders http.Header,
	responseBody string,
	responseHeaders http.Header,
) {
	if operation == Auth {
		requestBody = converting.RedactElements(requestBody, "Password")
		responseBody = converting.RedactElements(responseBody, "Token")
	}

	exchange := Exchange{
		Operation:       operation,
		StartDateTime:   startTime,
		Duration:        time.Since(startTime),
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		RequestHeaders:  converting.RedactHeaders(requestHeaders, "Authorization"),
		StatusCode:      statusCode,
		ResponseBody:    responseBody,
		ResponseHeaders: converting.RedactHeaders(responseHeaders),
	}

	b.Lock()
	b.exchanges = append(b.exchanges, exchange)
	b.Unlock()
}

func (b *ExchangesBucket) Exchanges() []Exchange {
	b.Lock()
	defer b.Unlock()

	exchanges := make([]Exchange, len(b.exchanges))
	copy(exchanges, b.exchanges)

	return exchanges
}

func (b *ExchangesBucket) Last() (Exchange, bool) {
	b.Lock()
	defer b.Unlock()

	if len(b.exchanges) == 0 {
		return Exchange{}, false
	}

	return b.exchanges[len(b.exchanges)-1], true
}
