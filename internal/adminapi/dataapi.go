package adminapi

import (
	"fmt"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/webserver"
)

// registerDataRoutes registers snapshot and download endpoints
func registerDataRoutes() {
	webserver.ApiGET("/data/export", exportData)
	webserver.ApiPOST("/data/import", importData)
	webserver.ApiGET("/data/backup", createBackup)
	webserver.ApiPOST("/data/restore", restoreBackup)
	webserver.ApiPOST("/data/clear", clearData)
	webserver.ApiGET("/data/size", storageSize)
	webserver.ApiGET("/data/orders.csv", exportOrdersCSV)
	webserver.ApiGET("/data/orders.xlsx", exportOrdersXLSX)
}

func exportData(c echo.Context) error {
	snap, err := deps.Store().Export()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, snap)
}

func importData(c echo.Context) error {
	var snap domain.Snapshot
	if err := c.Bind(&snap); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse snapshot")
	}
	if err := deps.Store().Import(snap); err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"imported": true})
}

func createBackup(c echo.Context) error {
	backup, err := deps.Store().CreateBackup()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, backup)
}

func restoreBackup(c echo.Context) error {
	var backup domain.Backup
	if err := c.Bind(&backup); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse backup")
	}
	if backup.Version == "" {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Not a backup document")
	}
	if err := deps.Store().RestoreBackup(backup); err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"restored": true})
}

func clearData(c echo.Context) error {
	if err := deps.Store().ClearAll(); err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"cleared": true})
}

func storageSize(c echo.Context) error {
	size, err := deps.Store().Size()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"bytes": size})
}

// orderCSVRow flattens one cart line for tabular export.
type orderCSVRow struct {
	OrderID   int64   `csv:"order_id"`
	Customer  string  `csv:"customer"`
	Table     string  `csv:"table"`
	Status    string  `csv:"status"`
	CreatedAt string  `csv:"created_at"`
	Dish      string  `csv:"dish"`
	Qty       int     `csv:"qty"`
	Amount    float64 `csv:"amount"`
}

func flattenOrders(orders []domain.Order) []*orderCSVRow {
	rows := []*orderCSVRow{}
	for _, o := range orders {
		for _, line := range o.Cart {
			rows = append(rows, &orderCSVRow{
				OrderID:   o.ID,
				Customer:  o.Customer,
				Table:     o.Table,
				Status:    o.Status,
				CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
				Dish:      line.Name,
				Qty:       line.Qty,
				Amount:    line.Amount(),
			})
		}
	}
	return rows
}

func exportOrdersCSV(c echo.Context) error {
	orders, err := deps.Orders().List()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(flattenOrders(orders), c.Response())
}

func exportOrdersXLSX(c echo.Context) error {
	orders, err := deps.Orders().List()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	f := excelize.NewFile()
	headers := []string{"order_id", "customer", "table", "status", "created_at", "dish", "qty", "amount"}
	for i, h := range headers {
		f.SetCellValue("Sheet1", fmt.Sprintf("%c1", 'A'+i), h)
	}
	for i, row := range flattenOrders(orders) {
		n := i + 2
		f.SetCellValue("Sheet1", fmt.Sprintf("A%d", n), row.OrderID)
		f.SetCellValue("Sheet1", fmt.Sprintf("B%d", n), row.Customer)
		f.SetCellValue("Sheet1", fmt.Sprintf("C%d", n), row.Table)
		f.SetCellValue("Sheet1", fmt.Sprintf("D%d", n), row.Status)
		f.SetCellValue("Sheet1", fmt.Sprintf("E%d", n), row.CreatedAt)
		f.SetCellValue("Sheet1", fmt.Sprintf("F%d", n), row.Dish)
		f.SetCellValue("Sheet1", fmt.Sprintf("G%d", n), row.Qty)
		f.SetCellValue("Sheet1", fmt.Sprintf("H%d", n), row.Amount)
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
