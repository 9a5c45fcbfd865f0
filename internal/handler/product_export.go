package handler

import (
	"strconv"

	"steelcatalog/internal/service"

	"github.com/tealeg/xlsx"
)

var productExportHeaders = []string{
	"Product ID", "SKU", "Name", "Grade", "Category", "Unit", "Minimum Order Qty",
	"Price Per Unit", "Weight Per Unit", "HSN Code", "Heat Number", "Active",
	"Images", "Documents", "Created At", "Updated At",
}

func productWorkbook(products []service.ProductResponse) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range productExportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ProductID)
		row.AddCell().SetValue(p.SKU)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Grade)
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		row.AddCell().SetValue(category)
		row.AddCell().SetValue(p.UnitOfMeasure)
		row.AddCell().SetValue(p.MinimumOrderQty)
		row.AddCell().SetValue(p.PricePerUnit.StringFixed(2))
		row.AddCell().SetValue(p.WeightPerUnit.String())
		row.AddCell().SetValue(p.HSNCode)
		row.AddCell().SetValue(p.HeatNumber)
		row.AddCell().SetValue(strconv.FormatBool(p.IsActive))
		row.AddCell().SetValue(len(p.Images))
		row.AddCell().SetValue(len(p.Documents))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}
