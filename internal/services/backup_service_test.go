// internal/services/backup_service_test.go
package services

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopledger/backend/internal/store"
)

func (s *ServicesTestSuite) backup() *BackupService {
	storage, err := NewStorageService(s.cfg)
	s.Require().NoError(err)
	return NewBackupService(s.repo, storage, "backups")
}

func (s *ServicesTestSuite) TestImportReplacesOnlyPresentKeys() {
	s.createOrder(1)
	before := s.repo.Snapshot()

	result, err := s.backup().Import(s.ctx, []byte(`{"clients":[{"id":"c-new","name":"Peter","phone":"0799000000"}]}`))
	s.Require().NoError(err)
	s.Equal(map[string]int{"clients": 1}, result.Replaced)

	after := s.repo.Snapshot()
	s.Require().Len(after.Clients, 1)
	s.Equal("c-new", after.Clients[0].ID)
	s.Equal(before.Orders, after.Orders)
	s.Equal(before.Products, after.Products)
	s.Equal(before.Catalogs, after.Catalogs)

	data, err := s.mem.Get(s.ctx, store.Clients)
	s.Require().NoError(err)
	s.Contains(string(data), "c-new")
}

func (s *ServicesTestSuite) TestImportRejectsMalformedPayloads() {
	before := s.repo.Snapshot()

	for _, payload := range []string{
		`not json at all`,
		`[]`,
		`{"clients": null}`,
		`{"clients": {"id": "x"}}`,
		`{"clients": [], "orders": "nope"}`,
		`{"settings": []}`,
		`{"products": [{"fob_price": "abc"}]}`,
	} {
		_, err := s.backup().Import(s.ctx, []byte(payload))
		s.ErrorIs(err, ErrMalformedImport, payload)
	}

	s.Equal(before, s.repo.Snapshot())
}

func (s *ServicesTestSuite) TestExportImportRoundTrip() {
	s.createOrder(2)
	svc := s.backup()

	data, err := svc.Export()
	s.Require().NoError(err)

	var doc map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &doc))
	for _, key := range []string{"catalogs", "products", "clients", "orders", "payments", "settings"} {
		s.Contains(doc, key)
	}

	_, err = svc.Import(s.ctx, data)
	s.Require().NoError(err)
	s.Len(s.repo.Snapshot().Orders, 1)
	s.NotNil(s.repo.Snapshot().Settings)
}

func (s *ServicesTestSuite) TestArchiveFallsBackToLocalDisk() {
	result, err := s.backup().Archive(s.ctx)
	s.Require().NoError(err)

	s.False(result.Remote)
	s.NotEmpty(result.Checksum)
	data, err := os.ReadFile(filepath.Join(s.cfg.AWS.LocalArchiveDir, filepath.FromSlash(result.Key)))
	s.Require().NoError(err)
	s.Equal(int64(len(data)), result.Size)
}
