package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Spreadsheet layout: header row, then name | category | price | stock | description.
const (
	importColName = iota
	importColCategory
	importColPrice
	importColStock
	importColDescription
)

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

// Import bulk-creates products for sellerID from the first sheet of an
// xlsx workbook. Bad rows are reported and skipped; good rows are
// inserted in one transaction.
func (s *ProductService) Import(ctx context.Context, sellerID uint, r io.Reader) (*ImportResult, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.BadRequest("invalid excel file")
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.BadRequest("workbook has no sheets")
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	out := &ImportResult{Skipped: []SkippedRow{}}
	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		p, reason := parseImportRow(row)
		if reason != "" {
			out.Skipped = append(out.Skipped, SkippedRow{Row: i + 1, Reason: reason})
			continue
		}
		p.SellerID = sellerID
		products = append(products, p)
	}

	err = s.Repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateBatch(tx, products)
	})
	if err != nil {
		return nil, err
	}
	out.Imported = len(products)

	log.Info().
		Uint("seller_id", sellerID).
		Int("imported", out.Imported).
		Int("skipped", len(out.Skipped)).
		Msg("product import finished")
	return out, nil
}

func parseImportRow(row []string) (entity.Product, string) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(importColName)
	if name == "" {
		return entity.Product{}, "name is required"
	}
	price, err := strconv.ParseInt(cell(importColPrice), 10, 64)
	if err != nil || price <= 0 {
		return entity.Product{}, "price must be a positive integer"
	}
	stock := 0
	if v := cell(importColStock); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil || stock < 0 {
			return entity.Product{}, "stock must be a non-negative integer"
		}
	}

	return entity.Product{
		Name:        name,
		Category:    cell(importColCategory),
		Price:       price,
		Stock:       stock,
		Description: cell(importColDescription),
	}, ""
}
