package schema

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangesBucket(t *testing.T) {
	bucket := NewExchangesBucket()

	_, ok := bucket.Last()
	assert.False(t, ok)

	requestHeaders := http.Header{}
	requestHeaders.Set("Authorization", "Bearer token-1")
	requestHeaders.Set("Content-Type", "application/xml")

	bucket.FinishedRequest(Auth, time.Now(), 200, http.MethodPost, "https://api.mixvel.com/api/Accounts/login", "<a:Auth><a:Password>secret</a:Password></a:Auth>", http.Header{}, "<a:Token>token-1</a:Token>", http.Header{})
	bucket.FinishedRequest(OrderCancel, time.Now(), 200, http.MethodPost, "https://api.mixvel.com/api/Order/Cancel", "<m:Mixvel_OrderCancelRQ/>", requestHeaders, "", nil)

	exchanges := bucket.Exchanges()
	require.Len(t, exchanges, 2)
	assert.Equal(t, Auth, exchanges[0].Operation)
	assert.Equal(t, "<a:Auth><a:Password>[REDACTED]</a:Password></a:Auth>", exchanges[0].RequestBody)
	assert.Equal(t, "<a:Token>[REDACTED]</a:Token>", exchanges[0].ResponseBody)

	last, ok := bucket.Last()
	require.True(t, ok)
	assert.Equal(t, OrderCancel, last.Operation)
	assert.Equal(t, []string{"[REDACTED]"}, last.RequestHeaders["Authorization"])
	assert.Equal(t, []string{"application/xml"}, last.RequestHeaders["Content-Type"])
	assert.Equal(t, "Bearer token-1", requestHeaders.Get("Authorization"))

	exchanges[0].Operation = OrderChange
	assert.Equal(t, Auth, bucket.Exchanges()[0].Operation)
}
