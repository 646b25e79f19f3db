package constants

// StandardExecutionList is the default checklist copied onto every new task.
// Operators edit the copy per task; the template itself is fixed.
var StandardExecutionList = []string{
	"確認活動日期與到場時間 (Confirm date & arrival time)",
	"確認人數與餐點份量 (Confirm headcount & portions)",
	"確認場地位置與動線 (Confirm venue & access)",
	"設備與器材清點 (Check equipment)",
	"現場聯絡人對接 (Sync with site manager)",
	"完成後回報營運 (Report back to ops)",
}

// LogisticsTemplates are per-event-type logistics timelines operators can
// load into an order as a starting point.
var LogisticsTemplates = map[string][]LogisticsTemplateItem{
	"外燴Buffet (Catering Buffet)": {
		{Time: "10:00", Action: "後勤出發 (Depart)"},
		{Time: "11:00", Action: "抵達/卸貨 (Arrive/Unload)"},
		{Time: "11:15", Action: "架設餐台與保溫 (Setup Buffet Line)"},
		{Time: "11:45", Action: "餐點上架確認 (Food Ready)"},
		{Time: "12:00", Action: "開始供餐 (Service Start)"},
		{Time: "13:30", Action: "巡場與補餐 (Refill)"},
		{Time: "14:00", Action: "收餐與清潔 (Teardown/Clean)"},
		{Time: "14:30", Action: "撤場完成 (Leave)"},
	},
	"內用Buffet (Dine-in Buffet)": {
		{Time: "11:00", Action: "廚房備餐完成 (Kitchen Ready)"},
		{Time: "11:30", Action: "前台Buffet線架設 (Setup Line)"},
		{Time: "11:45", Action: "餐具與動線確認 (Check Cutlery)"},
		{Time: "12:00", Action: "開放取餐 (Open)"},
		{Time: "13:30", Action: "整理餐台 (Tidy up)"},
		{Time: "14:30", Action: "餐期結束/清理 (End/Clean)"},
	},
	"西式餐盒(外送) (Box Meal - Delivery)": {
		{Time: "09:30", Action: "摺紙盒準備 (Fold Boxes)"},
		{Time: "10:00", Action: "分裝/擺盤 (Packing)"},
		{Time: "10:30", Action: "封箱與核對 (Seal & Check)"},
		{Time: "10:45", Action: "裝車 (Load)"},
		{Time: "11:00", Action: "出發外送 (Depart)"},
	},
	"街吧派對 (Street Bar)": {
		{Time: "17:00", Action: "抵達現場 (Arrive)"},
		{Time: "17:30", Action: "吧台與Logo架設 (Setup Bar)"},
		{Time: "18:00", Action: "酒水冰鎮與備料 (Prep Drinks)"},
		{Time: "18:30", Action: "活動開始/調酒服務 (Service Start)"},
		{Time: "21:30", Action: "最後點單 (Last Call)"},
		{Time: "22:00", Action: "撤吧與場復 (Teardown)"},
	},
}

// LogisticsTemplateItem mirrors order.LogisticsTime without importing the
// model package from constants.
type LogisticsTemplateItem struct {
	Time   string `json:"time"`
	Action string `json:"action"`
}

// EventFlowTemplates are per-event-type run-of-show timelines operators can
// load into an order's event flow.
var EventFlowTemplates = map[string][]EventFlowTemplateItem{
	"抓周派對 (Zhuazhou)": {
		{Time: "10:00", Activity: "賓客入場", Description: "播放迎賓音樂，引導賓客簽到"},
		{Time: "10:30", Activity: "主持人開場", Description: "介紹壽星寶寶與家長"},
		{Time: "10:45", Activity: "抓周儀式", Description: "準備米篩、聰明門，寶寶抓周"},
		{Time: "11:15", Activity: "全家福合影", Description: "攝影師協助拍攝"},
		{Time: "11:30", Activity: "享用餐點", Description: "Buffet/點心開始供應"},
		{Time: "13:00", Activity: "活動圓滿結束", Description: "發送伴手禮"},
	},
	"春酒尾牙 (Spring Wine)": {
		{Time: "18:00", Activity: "迎賓入場", Description: "接待處簽到，領取抽獎券"},
		{Time: "18:30", Activity: "長官致詞", Description: "總經理/董事長致詞"},
		{Time: "19:00", Activity: "開席上菜", Description: "主桌敬酒"},
		{Time: "19:30", Activity: "表演節目", Description: "樂團/員工表演"},
		{Time: "20:00", Activity: "第一階段抽獎", Description: "抽出小獎與紅包"},
		{Time: "20:30", Activity: "敬酒時間", Description: "各桌互動"},
		{Time: "21:00", Activity: "最大獎抽出", Description: "加碼時間"},
		{Time: "21:30", Activity: "活動結束", Description: "期待明年再見"},
	},
	"生日派對 (Birthday Party)": {
		{Time: "11:00", Activity: "佈置準備", Description: "氣球、背板架設"},
		{Time: "12:00", Activity: "壽星抵達", Description: "驚喜歡迎"},
		{Time: "12:30", Activity: "派對開始", Description: "享用美食與飲料"},
		{Time: "13:30", Activity: "切蛋糕儀式", Description: "唱生日快樂歌、許願"},
		{Time: "14:00", Activity: "遊戲互動", Description: "團體小遊戲"},
		{Time: "15:00", Activity: "派對結束", Description: "合影留念"},
	},
	"說明會 (Briefing)": {
		{Time: "13:30", Activity: "報到接待", Description: "領取講義與識別證"},
		{Time: "14:00", Activity: "會議開始", Description: "主持人開場"},
		{Time: "14:10", Activity: "產品介紹", Description: "主講人簡報"},
		{Time: "15:00", Activity: "中場休息", Description: "茶點時間"},
		{Time: "15:20", Activity: "Q&A 交流", Description: "開放提問"},
		{Time: "16:00", Activity: "會議結束", Description: "會後個別交流"},
	},
	"遊艇外燴 (Yacht Catering)": {
		{Time: "16:00", Activity: "後勤登船", Description: "餐點與酒水上船"},
		{Time: "16:30", Activity: "賓客登船", Description: "迎賓香檳"},
		{Time: "17:00", Activity: "啟航", Description: "船長廣播"},
		{Time: "17:30", Activity: "甲板派對", Description: "Finger Food 與調酒"},
		{Time: "19:00", Activity: "返航", Description: "準備靠岸"},
		{Time: "19:30", Activity: "下船", Description: "確認無物品遺留"},
	},
	"西式餐盒 (Box Meal)": {
		{Time: "10:00", Activity: "餐盒製作", Description: "廚房分裝"},
		{Time: "11:00", Activity: "裝箱盤點", Description: "確認數量與特殊餐點"},
		{Time: "11:30", Activity: "送達現場", Description: "簽收確認"},
		{Time: "12:00", Activity: "發放餐盒", Description: "依照部門/組別發放"},
		{Time: "13:00", Activity: "回收餐盒", Description: "垃圾分類處理"},
	},
	"內用Buffet (Dine-in Buffet)": {
		{Time: "11:30", Activity: "開放入席", Description: "帶位入座"},
		{Time: "12:00", Activity: "取餐說明", Description: "介紹餐點特色"},
		{Time: "12:10", Activity: "用餐時間", Description: "Buffet 自由取用"},
		{Time: "13:00", Activity: "甜點時間", Description: "更換甜點盤"},
		{Time: "14:00", Activity: "餐期結束", Description: "結帳與送客"},
	},
	"內用點心 (Dine-in Snacks)": {
		{Time: "14:00", Activity: "午茶入席", Description: "安排座位"},
		{Time: "14:15", Activity: "點心塔上桌", Description: "包含鹹點與甜點"},
		{Time: "14:30", Activity: "茶飲服務", Description: "詢問茶或咖啡"},
		{Time: "16:00", Activity: "用餐結束", Description: "打包服務"},
	},
}

// EventFlowTemplateItem mirrors order.EventFlowItem without importing the
// model package from constants.
type EventFlowTemplateItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}
