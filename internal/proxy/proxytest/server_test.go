package proxytest

import (
	"context"
	"net"
	"strconv"
	"testing"

	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, s *Server) (*proxy.AccumuloProxyClient, thrift.TTransport) {
	t.Helper()
	conf := &thrift.TConfiguration{}
	addr := net.JoinHostPort(s.Host(), strconv.Itoa(s.Port()))

	transport := thrift.NewTFramedTransportConf(thrift.NewTSocketConf(addr, conf), conf)
	protocol := thrift.NewTCompactProtocolConf(transport, conf)
	require.NoError(t, transport.Open())
	t.Cleanup(func() { _ = transport.Close() })

	return proxy.NewAccumuloProxyClientProtocol(protocol, protocol), transport
}

func TestServer_StaticHandler_AcceptsKnownUser(t *testing.T) {
	s, err := NewServer(StaticHandler{Principal: "root", Password: "secret", Token: []byte("tok")})
	require.NoError(t, err)
	defer s.Close()

	client, _ := dial(t, s)
	got, err := client.Login(context.Background(), "root", map[string]string{"password": "secret"})

	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), got)
	assert.Equal(t, int64(1), s.Calls())
}

func TestServer_StaticHandler_RejectsWrongPassword(t *testing.T) {
	s, err := NewServer(StaticHandler{Principal: "root", Password: "secret", Token: []byte("tok")})
	require.NoError(t, err)
	defer s.Close()

	client, _ := dial(t, s)
	_, err = client.Login(context.Background(), "root", map[string]string{"password": "wrong"})

	var secErr *proxy.AccumuloSecurityException
	require.ErrorAs(t, err, &secErr)
	assert.Contains(t, secErr.Msg, "BAD_CREDENTIALS")
	assert.Equal(t, int64(1), s.Calls())
}

func TestServer_StaticHandler_RejectsMissingPasswordProperty(t *testing.T) {
	s, err := NewServer(StaticHandler{Principal: "root", Password: "secret"})
	require.NoError(t, err)
	defer s.Close()

	client, _ := dial(t, s)
	_, err = client.Login(context.Background(), "root", map[string]string{})

	var secErr *proxy.AccumuloSecurityException
	require.ErrorAs(t, err, &secErr)
}

func TestServer_ConnectionStaysUsable(t *testing.T) {
	s, err := NewServer(StaticHandler{Principal: "root", Password: "secret", Token: []byte("tok")})
	require.NoError(t, err)
	defer s.Close()

	client, _ := dial(t, s)
	for i := 0; i < 3; i++ {
		_, err = client.Login(context.Background(), "root", map[string]string{"password": "secret"})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), s.Calls())
}

func TestServer_HandlerFailureBecomesApplicationException(t *testing.T) {
	s, err := NewServer(HandlerFunc(func(context.Context, string, map[string]string) ([]byte, error) {
		return nil, ErrHandler
	}))
	require.NoError(t, err)
	defer s.Close()

	client, _ := dial(t, s)
	_, err = client.Login(context.Background(), "root", nil)

	var appErr thrift.TApplicationException
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, int32(thrift.INTERNAL_ERROR), appErr.TypeId())
}

func TestServer_CloseIsIdempotent(t *testing.T) {
	s, err := NewServer(StaticHandler{})
	require.NoError(t, err)

	s.Close()
	s.Close()

	_, err = net.Dial("tcp", net.JoinHostPort(s.Host(), strconv.Itoa(s.Port())))
	assert.Error(t, err)
}
