package dto

// StockItem item do saldo atual com campos de exibição.
type StockItem struct {
	Location     string `json:"location"`
	LocationCode string `json:"location_code"`
	Ref          string `json:"ref"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
}

// ImportStatusResponse presença dos arquivos de importação inicial.
type ImportStatusResponse struct {
	ProductsCSV  bool `json:"products_csv"`
	LocationsCSV bool `json:"locations_csv"`
}
