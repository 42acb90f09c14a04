package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nida1khurram/school-fee-app/app/models"
)

// ErrParse marks a records file whose content does not form a valid table.
// Callers recover by treating the store as empty.
var ErrParse = errors.New("records file is not valid CSV")

// RecordStore persists fee records as a single CSV file with a fixed
// 12-column schema. Every operation is a full read-modify-write; a mutex
// serializes callers within the process and all writes go through an atomic
// rename, so the file is never left half-written.
type RecordStore struct {
	mu   sync.Mutex
	path string

	// Columns beyond the fixed schema seen on the last load, preserved in
	// order through rewrites.
	extraCols []string
}

// NewRecordStore returns a store backed by the CSV file at path. The file
// is created lazily on first write.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the location of the backing file.
func (s *RecordStore) Path() string {
	return s.path
}

// MigrateSchema reconciles a header read from disk against the fixed
// schema. It returns the reconciled header (fixed columns first, then any
// extra columns in their order of appearance) and the fixed columns that
// were missing. Reconciling an already reconciled header is a no-op.
func MigrateSchema(header []string) (reconciled, missing []string) {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	known := make(map[string]bool, len(models.Columns))
	reconciled = make([]string, 0, len(header))
	for _, col := range models.Columns {
		known[col] = true
		reconciled = append(reconciled, col)
		if !present[col] {
			missing = append(missing, col)
		}
	}
	for _, col := range header {
		if !known[col] {
			reconciled = append(reconciled, col)
		}
	}
	return reconciled, missing
}

// LoadAll reads every record from the backing file. A missing file yields an
// empty result; an unreadable or malformed file yields an empty result and
// an error the caller may treat as "no records". Missing schema columns are
// backfilled empty and, when any were missing, the reconciled file is
// rewritten in place so the schema migration sticks. Dates and entry
// timestamps are normalized to their display forms and rows that are empty
// across all columns are dropped.
func (s *RecordStore) LoadAll() ([]models.FeeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, missing, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		if err := s.write(records); err != nil {
			return nil, fmt.Errorf("failed to rewrite reconciled schema: %w", err)
		}
	}
	return records, nil
}

// Append adds one record to the store, preserving all existing rows and
// columns.
func (s *RecordStore) Append(record models.FeeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.load()
	if err != nil {
		return err
	}
	return s.write(append(records, record))
}

// ReplaceAll rewrites the whole store from records, in the given order. Used
// by the editor for bulk update and delete.
func (s *RecordStore) ReplaceAll(records []models.FeeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(records)
}

// Reinitialize resets the store to an empty file holding only the header
// row. If a file exists it is first copied to backup_<YYYYMMDD_HHMMSS>.csv
// next to the store; the backup path is returned, empty if there was
// nothing to back up.
func (s *RecordStore) Reinitialize() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := ""
	data, err := os.ReadFile(s.path)
	if err == nil {
		backup = filepath.Join(filepath.Dir(s.path),
			fmt.Sprintf("backup_%s.csv", time.Now().Format("20060102_150405")))
		if err := os.WriteFile(backup, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read records file: %w", err)
	}

	s.extraCols = nil
	if err := s.write(nil); err != nil {
		return "", err
	}
	return backup, nil
}

// Check verifies the backing file can be loaded and returns the row count.
func (s *RecordStore) Check() (int, error) {
	records, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// load reads and reconciles the file. Callers must hold s.mu. It returns
// the missing fixed columns so LoadAll can decide to rewrite.
func (s *RecordStore) load() ([]models.FeeRecord, []string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.extraCols = nil
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(rows) == 0 {
		// Zero-byte or headerless file: treat as empty with every fixed
		// column missing so the schema gets written back.
		s.extraCols = nil
		return nil, models.Columns, nil
	}

	header := rows[0]
	reconciled, missing := MigrateSchema(header)
	s.extraCols = reconciled[len(models.Columns):]

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	var records []models.FeeRecord
	for _, row := range rows[1:] {
		record, empty := recordFromRow(row, index, s.extraCols)
		if empty {
			continue
		}
		records = append(records, record)
	}
	return records, missing, nil
}

// write rewrites the whole file from records. Callers must hold s.mu.
func (s *RecordStore) write(records []models.FeeRecord) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, models.Columns...), s.extraCols...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for _, record := range records {
		if err := w.Write(rowFromRecord(record, s.extraCols)); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return WriteFileAtomic(s.path, buf.Bytes())
}

func cell(row []string, index map[string]int, col string) string {
	i, ok := index[col]
	if !ok || i >= len(row) {
		return ""
	}
	value := strings.TrimSpace(row[i])
	if strings.EqualFold(value, "nan") {
		return ""
	}
	return value
}

// parseAmount reads a currency cell. The original tool stored amounts as
// plain integers but pandas rewrites could leave floats or NaN behind, so
// both are tolerated; anything else counts as zero.
func parseAmount(value string) int {
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

func recordFromRow(row []string, index map[string]int, extraCols []string) (models.FeeRecord, bool) {
	empty := true
	for _, v := range row {
		v = strings.TrimSpace(v)
		if v != "" && !strings.EqualFold(v, "nan") {
			empty = false
			break
		}
	}
	if empty {
		return models.FeeRecord{}, true
	}

	record := models.FeeRecord{
		ID:             cell(row, index, models.ColID),
		StudentName:    cell(row, index, models.ColStudentName),
		ClassCategory:  cell(row, index, models.ColClassCategory),
		ClassSection:   cell(row, index, models.ColClassSection),
		Month:          cell(row, index, models.ColMonth),
		MonthlyFee:     parseAmount(cell(row, index, models.ColMonthlyFee)),
		AnnualCharges:  parseAmount(cell(row, index, models.ColAnnualCharges)),
		AdmissionFee:   parseAmount(cell(row, index, models.ColAdmissionFee)),
		ReceivedAmount: parseAmount(cell(row, index, models.ColReceivedAmount)),
		Date:           normalizeDate(cell(row, index, models.ColDate)),
		Signature:      cell(row, index, models.ColSignature),
		EntryTimestamp: normalizeTimestamp(cell(row, index, models.ColEntryTimestamp)),
	}
	for _, col := range extraCols {
		value := cell(row, index, col)
		if value == "" {
			continue
		}
		if record.Extra == nil {
			record.Extra = make(map[string]string)
		}
		record.Extra[col] = value
	}
	return record, false
}

func rowFromRecord(record models.FeeRecord, extraCols []string) []string {
	row := []string{
		record.ID,
		record.StudentName,
		record.ClassCategory,
		record.ClassSection,
		record.Month,
		strconv.Itoa(record.MonthlyFee),
		strconv.Itoa(record.AnnualCharges),
		strconv.Itoa(record.AdmissionFee),
		strconv.Itoa(record.ReceivedAmount),
		record.Date,
		record.Signature,
		record.EntryTimestamp,
	}
	for _, col := range extraCols {
		row = append(row, record.Extra[col])
	}
	return row
}
