package session

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorra-iot/dorrad/internal/config"
)

// writeTestCert generates a self-signed certificate and key into dir
func writeTestCert(t *testing.T, dir string) (certPath, keyPath string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "dorrad-test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	certPath = filepath.Join(dir, "cert.pem")
	keyPath = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath,
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath,
		pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certPath, keyPath
}

func TestNewTLSConfig_Defaults(t *testing.T) {
	tlsCfg, err := newTLSConfig(&config.MQTTConfig{})
	require.NoError(t, err)

	assert.False(t, tlsCfg.InsecureSkipVerify)
	assert.Nil(t, tlsCfg.RootCAs, "system roots used when no CA configured")
	assert.Empty(t, tlsCfg.Certificates)
}

func TestNewTLSConfig_InsecureSkip(t *testing.T) {
	tlsCfg, err := newTLSConfig(&config.MQTTConfig{InsecureSkip: true})
	require.NoError(t, err)
	assert.True(t, tlsCfg.InsecureSkipVerify)
}

func TestNewTLSConfig_WithCA(t *testing.T) {
	caPath, _ := writeTestCert(t, t.TempDir())

	tlsCfg, err := newTLSConfig(&config.MQTTConfig{CACert: caPath})
	require.NoError(t, err)
	assert.NotNil(t, tlsCfg.RootCAs)
}

func TestNewTLSConfig_WithClientCert(t *testing.T) {
	dir := t.TempDir()
	certPath, keyPath := writeTestCert(t, dir)

	tlsCfg, err := newTLSConfig(&config.MQTTConfig{
		ClientCert: certPath,
		ClientKey:  keyPath,
	})
	require.NoError(t, err)
	assert.Len(t, tlsCfg.Certificates, 1)
}

func TestNewTLSConfig_MissingCA(t *testing.T) {
	_, err := newTLSConfig(&config.MQTTConfig{CACert: "/nonexistent/ca.pem"})
	require.Error(t, err)
}

func TestNewTLSConfig_MalformedCA(t *testing.T) {
	dir := t.TempDir()
	caPath := filepath.Join(dir, "bad.pem")
	require.NoError(t, os.WriteFile(caPath, []byte("not a certificate"), 0o600))

	_, err := newTLSConfig(&config.MQTTConfig{CACert: caPath})
	require.Error(t, err)
}

func TestNewTLSConfig_MismatchedPair(t *testing.T) {
	dir := t.TempDir()
	certPath, _ := writeTestCert(t, dir)

	_, err := newTLSConfig(&config.MQTTConfig{
		ClientCert: certPath,
		ClientKey:  "/nonexistent/key.pem",
	})
	require.Error(t, err)
}
