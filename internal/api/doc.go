// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）。
// 它負責將表單請求轉換為適當的服務調用，並渲染 HTML 頁面或轉址。
package api
