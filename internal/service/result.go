package service

// Status 定義操作結果訊息的分類，對應頁面上顯示的提示樣式
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
	StatusInfo    Status = "info"
)

// Result 表示一次操作的結果訊息，由展示層負責渲染
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}
