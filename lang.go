package menuscript

// Display languages scripts can switch between with set-language
const (
	LangEN   = "en"
	LangZhTW = "zh-TW"
	LangZhCN = "zh-CN"
)

// SupportedLanguages maps language codes to their display names
var SupportedLanguages = map[string]string{
	LangEN:   "English",
	LangZhTW: "繁體中文",
	LangZhCN: "简体中文",
}

var translations = map[string]map[string]string{
	LangEN: {
		"welcome":            "Welcome",
		"ready":              "Ready",
		"error":              "Error",
		"success":            "Success",
		"loading":            "Loading...",
		"complete":           "Complete",
		"processing":         "Processing...",
		"connecting":         "Connecting...",
		"disconnected":       "Disconnected",
		"timeout":            "Timeout",
		"network_error":      "Network Error",
		"invalid_input":      "Invalid Input",
		"button_ok":          "OK",
		"button_cancel":      "Cancel",
		"button_close":       "Close",
		"button_save":        "Save",
		"button_load":        "Load",
		"button_clear":       "Clear",
		"button_test":        "Test",
		"label_status":       "Status",
		"label_result":       "Result",
		"label_message":      "Message",
		"window_title":       "Application",
		"popup_title":        "Dialog",
		"language_changed":   "Language Changed",
		"popup_opened":       "Popup Opened",
		"popup_closed":       "Popup Closed",
		"operation_failed":   "Operation Failed",
		"operation_success":  "Operation Successful",
		"api_call_success":   "API Call Successful",
		"api_call_failed":    "API Call Failed",
		"connection_success": "Connection Successful",
		"connection_failed":  "Connection Failed",
		"test_passed":        "Test Passed",
		"test_failed":        "Test Failed",
	},
	LangZhTW: {
		"welcome":            "歡迎使用",
		"ready":              "就緒",
		"error":              "錯誤",
		"success":            "成功",
		"loading":            "載入中...",
		"complete":           "完成",
		"processing":         "處理中...",
		"connecting":         "連線中...",
		"disconnected":       "已斷線",
		"timeout":            "逾時",
		"network_error":      "網路錯誤",
		"invalid_input":      "無效輸入",
		"button_ok":          "確定",
		"button_cancel":      "取消",
		"button_close":       "關閉",
		"button_save":        "儲存",
		"button_load":        "載入",
		"button_clear":       "清除",
		"button_test":        "測試",
		"label_status":       "狀態",
		"label_result":       "結果",
		"label_message":      "訊息",
		"window_title":       "應用程式",
		"popup_title":        "對話框",
		"language_changed":   "語言已變更",
		"popup_opened":       "彈出視窗已開啟",
		"popup_closed":       "彈出視窗已關閉",
		"operation_failed":   "操作失敗",
		"operation_success":  "操作成功",
		"api_call_success":   "API 呼叫成功",
		"api_call_failed":    "API 呼叫失敗",
		"connection_success": "連線成功",
		"connection_failed":  "連線失敗",
		"test_passed":        "測試通過",
		"test_failed":        "測試失敗",
	},
	LangZhCN: {
		"welcome":            "欢迎使用",
		"ready":              "就绪",
		"error":              "错误",
		"success":            "成功",
		"loading":            "载入中...",
		"complete":           "完成",
		"processing":         "处理中...",
		"connecting":         "连接中...",
		"disconnected":       "已断开",
		"timeout":            "超时",
		"network_error":      "网络错误",
		"invalid_input":      "无效输入",
		"button_ok":          "确定",
		"button_cancel":      "取消",
		"button_close":       "关闭",
		"button_save":        "保存",
		"button_load":        "载入",
		"button_clear":       "清除",
		"button_test":        "测试",
		"label_status":       "状态",
		"label_result":       "结果",
		"label_message":      "消息",
		"window_title":       "应用程序",
		"popup_title":        "对话框",
		"language_changed":   "语言已变更",
		"popup_opened":       "弹出窗口已开启",
		"popup_closed":       "弹出窗口已关闭",
		"operation_failed":   "操作失败",
		"operation_success":  "操作成功",
		"api_call_success":   "API 调用成功",
		"api_call_failed":    "API 调用失败",
		"connection_success": "连接成功",
		"connection_failed":  "连接失败",
		"test_passed":        "测试通过",
		"test_failed":        "测试失败",
	},
}

// getText returns the translation for key in the given language. Unknown
// keys come back unchanged so a missing translation degrades visibly
// instead of erroring.
func getText(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	return key
}
