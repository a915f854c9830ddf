package content

import "time"

// DefaultVersion tags the built-in document. The schema validator only checks
// presence, not the value.
const DefaultVersion = "1.0"

// DefaultDocument builds the complete fallback document used whenever storage
// has no content yet or cannot be reached. Every required top-level field is
// populated so no consumer ever sees a partial document. This is the single
// constructor for the defaults; both the data service and the client accessor
// fall back through here.
func DefaultDocument() *ContentDocument {
	return &ContentDocument{
		Version:      DefaultVersion,
		LastModified: time.Now().UTC().Format(time.RFC3339),
		TripInfo: TripInfo{
			Title:    "Khao Yai Getaway",
			Subtitle: "14 Friends, 2D1N",
			Dates:    "เสาร์ 8 - อาทิตย์ 9 พฤศจิกายน 2568",
			Location: "DN Poolvilla Khaoyai",
			TeamSize: 14,
		},
		ImageURLs:              defaultImageURLs(),
		Timeline:               defaultTimeline(),
		Activities:             defaultActivities(),
		Restaurants:            defaultRestaurants(),
		ThongsomboonPackages:   defaultPackages(),
		VillaZones:             defaultVillaZones(),
		HouseRules:             defaultHouseRules(),
		EveningActivities:      defaultEveningActivities(),
		Day2Options:            defaultDay2Options(),
		DressCodeColors:        defaultDressCodeColors(),
		ChecklistItems:         defaultChecklistItems(),
		MakroChecklist:         []MakroChecklistCategory{},
		ShoppingCategories:     defaultShoppingCategories(),
		ThongsomboonPromotions: defaultPromotions(),
		DepartureInfo: DepartureInfo{
			MeetingPoint:     "บ้านพักเด็กและครอบครัว",
			MeetingTime:      "07:30 น.",
			EstimatedArrival: "ถึงบ้านพักเด็กฯ ไม่เกิน 10:00 น.",
			MapURL:           "https://maps.app.goo.gl/XoyzzALf47VfxwQ36",
			DonationActivity: "10:00-10:30 น. (ประมาณ 30 นาที)",
		},
		TathamplaphowInfo: defaultTathamplaphow(),
		BreakfastSpots:    defaultBreakfastSpots(),
		ExternalLinks: ExternalLinks{
			VillaMap:          "https://maps.google.com/?q=DN+Poolvilla+Khaoyai",
			RapsodiaMap:       "https://maps.google.com/?q=Rapsodia+Park+Khao+Yai",
			MakroMap:          "https://maps.google.com/?q=Makro+Foodservice+Pak+Chong",
			CharityMap:        "https://maps.app.goo.gl/XoyzzALf47VfxwQ36",
			KruaBanNaiPhonMap: "https://maps.google.com/?q=ครัวบ้านนายพล+เขาใหญ่",
			ShoppingChecklist: "https://docs.google.com/spreadsheets/d/YOUR_SHEET_ID",
			VillaPhone:        "081-234-5678",
		},
	}
}

func defaultImageURLs() map[string]string {
	return map[string]string{
		"hero":             "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1920&q=80",
		"thongsomboonMain": "https://ik.imagekit.io/tvlk/xpe-asset/AyJ40ZAo1DOyPyKLZ9c3RGQHTP2oT4ZXW+QmPVVkFQiXFSv42UaHGzSmaSzQ8DO5QIbWPZuF+VkYVRk6gh-Vg4ECbfuQRQ4pHjWJ5Rmbtkk=/7749363751758/Thongsomboon-Club-Ticket-884d86f3-59d7-44bf-9a7d-053321937325.jpeg",
		"atv":              "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
		"zipline":          "https://images.unsplash.com/photo-1527004013197-933c4bb611b3?w=800&q=80",
		"luge":             "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=800&q=80",
		"goKart":           "https://images.unsplash.com/photo-1566577134770-3d85bb3a9cc4?w=800&q=80",
		"paintball":        "https://images.unsplash.com/photo-1511886929837-354d827aae26?w=800&q=80",
		"archery":          "https://images.unsplash.com/photo-1574607383476-f517f260d30b?w=800&q=80",
		"horseRiding":      "https://images.unsplash.com/photo-1553284965-83fd3e82fa5a?w=800&q=80",
		"rafting":          "https://images.unsplash.com/photo-1501555088652-021faa106b9b?w=800&q=80",
		"buggy":            "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800&q=80",
		"midwinter":        "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800&q=80",
		"chocolate":        "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?w=800&q=80",
		"kruaKhaoYai":      "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
		"cafeAmazon":       "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800&q=80",
		"breakfastKrua":    "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800&q=80",
		"villa":            "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1200&q=80",
		"villaPool":        "https://images.unsplash.com/photo-1602002418082-a4443e081dd1?w=1200&q=80",
		"villaInterior":    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
		"outfit1":          "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=600&q=80",
		"outfit2":          "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=600&q=80",
		"outfit3":          "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=600&q=80",
		"outfit4":          "https://images.unsplash.com/photo-1492447166138-50c3889fccb1?w=600&q=80",
		"outfit5":          "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?w=600&q=80",
		"outfit6":          "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600&q=80",
		"cafeBloom":        "https://images.unsplash.com/photo-1445116572660-236099ec97a0?w=800&q=80",
		"viewpoint":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&q=80",
		"shopping":         "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800&q=80",
		"forest":           "https://images.unsplash.com/photo-1511497584788-876760111969?w=1200&q=80",
		"grassField":       "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=1200&q=80",
	}
}

func defaultTimeline() []TimelineItem {
	imgs := defaultImageURLs()
	return []TimelineItem{
		{Time: "วันที่ 1", Title: "เสาร์ 8 พ.ย. 2568", Icon: "calendar", Description: "วันแรกของการเดินทาง", IsDayMarker: true},
		{Time: "07:30", Title: "พบกันที่ บ้านพักเด็กและครอบครัว", Icon: "map-pin", Description: "จุดนัดพบที่บ้านพักเด็กและครอบครัว จ.สระบุรี", Image: "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?w=800&q=80"},
		{Time: "10:00", Title: "กิจกรรมบริจาค", Icon: "heart", Description: "กิจกรรมบริจาคที่บ้านพักเด็กและครอบครัว (30 นาที)", Image: "https://images.unsplash.com/photo-1532629345422-7515f3d16bb6?w=800&q=80"},
		{Time: "10:30", Title: "เดินทางสู่เขาใหญ่", Icon: "car", Description: "เดินทางจากสระบุรีสู่เขาใหญ่", Image: imgs["hero"]},
		{Time: "12:00", Title: "ทานอาหารกลางวัน", Icon: "utensils", Description: "ครัวบ้านนายพล (1-1.5 ชม.)", Image: imgs["kruaKhaoYai"]},
		{Time: "14:00", Title: "กิจกรรมที่ Rapsodia Park Khao Yai", Icon: "activity", Description: "ATV และนั่งชิล (1-2 ชม.)", Image: imgs["atv"]},
		{Time: "16:30", Title: "ช้อปปิ้งที่ Makro Foodservice", Icon: "shopping-cart", Description: "ซื้อของทำอาหารเย็นและของว่าง", Image: imgs["shopping"]},
		{Time: "18:00", Title: "เช็คอินวิลล่า", Icon: "home", Description: "DN Poolvilla Khaoyai - แบ่งห้องและพักผ่อน", Image: imgs["villa"]},
		{Time: "20:00", Title: "ปาร์ตี้ริมสระ & ปิ้งย่าง", Icon: "flame", Description: "ทำอาหารเย็น คาราโอเกะ เล่นน้ำ", Image: imgs["villaPool"]},
		{Time: "วันที่ 2", Title: "อาทิตย์ 9 พ.ย. 2568", Icon: "calendar", Description: "วันที่สองและเดินทางกลับ", IsDayMarker: true},
		{Time: "08:00", Title: "อาหารเช้าที่วิลล่า", Icon: "coffee", Description: "ทานอาหารเช้าพร้อมกัน", Image: imgs["breakfastKrua"]},
		{Time: "10:00", Title: "กิจกรรมเช้า (ตัวเลือก)", Icon: "sun", Description: "คาเฟ่ จุดชมวิว หรือช้อปปิ้งของฝาก", Image: imgs["cafeBloom"]},
		{Time: "12:00", Title: "เช็คเอาท์และทานอาหารกลางวัน", Icon: "utensils", Description: "เก็บของและเตรียมตัวเดินทางกลับ", Image: imgs["kruaKhaoYai"]},
		{Time: "14:00", Title: "เดินทางกลับกรุงเทพฯ", Icon: "car", Description: "ถึงกรุงเทพฯประมาณ 17:00 น.", Image: imgs["forest"]},
	}
}

func defaultActivities() []ActivityCard {
	imgs := defaultImageURLs()
	return []ActivityCard{
		{ID: "atv", Title: "ATV ขับรถ 4 ล้อ", Description: "ลุยเส้นทาง 1,500 เมตร เหมาะกับทุกวัย", Image: imgs["atv"], Icon: "bike"},
		{ID: "zipline", Title: "Flying Fox (Zipline)", Description: "บินผ่านป่า ชมวิวสวยงามจากมุมสูง", Image: imgs["zipline"], Icon: "zap"},
		{ID: "luge", Title: "Luge สายรุ้ง", Description: "ลูจสุดมันส์กับเส้นทางสายรุ้ง", Image: imgs["luge"], Icon: "zap"},
		{ID: "gokart", Title: "Go Kart แข่งรถ", Description: "แข่งรถโกคาร์ทสนุกระทึกใจ", Image: imgs["goKart"], Icon: "truck"},
		{ID: "rafting", Title: "ล่องแก่ง", Description: "ล่องแก่งสนุกสนาน เย็นฉ่ำ", Image: imgs["rafting"], Icon: "zap"},
		{ID: "horseriding", Title: "ขี่ม้า", Description: "ขี่ม้าชมธรรมชาติรอบสวน (999฿)", Image: imgs["horseRiding"], Icon: "heart"},
		{ID: "archery", Title: "ยิงธนู", Description: "ฝึกสมาธิและความแม่นยำ", Image: imgs["archery"], Icon: "crosshair"},
		{ID: "paintball", Title: "Paintball ยิงสี", Description: "เกมยิงสีแบบทีม สร้างความสามัคคี", Image: imgs["paintball"], Icon: "target"},
	}
}

func defaultRestaurants() []RestaurantInfo {
	imgs := defaultImageURLs()
	return []RestaurantInfo{
		{Name: "Midwinter Green", Type: "คาเฟ่และอาหารฝรั่ง", Phone: "044-365-999", MapURL: "https://maps.google.com/?q=Midwinter+Green+Khao+Yai", Image: imgs["midwinter"], Notes: "จองล่วงหน้าสำหรับกลุ่มใหญ่"},
		{Name: "Chocolate Factory", Type: "ร้านช็อกโกแลตและเบเกอรี่", Phone: "044-297-555", MapURL: "https://maps.google.com/?q=Chocolate+Factory+Khao+Yai", Image: imgs["chocolate"], Notes: "มีที่นั่งกลุ่มใหญ่"},
		{Name: "Krua Khao Yai", Type: "อาหารไทยและอีสาน", Phone: "086-123-4567", MapURL: "https://maps.google.com/?q=Krua+Khao+Yai", Image: imgs["kruaKhaoYai"], Notes: "อาหารอร่อย ราคาไม่แพง"},
	}
}

func defaultPackages() []ThongsomboonPackage {
	return []ThongsomboonPackage{
		{ID: "basic", Price: "399", Name: "แพ็คเกจ Basic", Duration: "3 ชั่วโมง", Activities: "13 กิจกรรม", Highlight: "เล่นไม่จำกัดรอบ", Includes: []string{"น้ำอัดลม 1 แก้ว"}},
		{ID: "premium", Price: "499", Name: "แพ็คเกจ Premium", Duration: "3 ชั่วโมง", Activities: "13 กิจกรรม", Highlight: "เล่นไม่จำกัดรอบ + ATV", Includes: []string{"บัตร ATV 1 ใบ", "น้ำอัดลม 1 แก้ว", "ไอศกรีม 1 โคน"}, Recommended: true},
		{ID: "vip", Price: "999", Name: "แพ็คเกจ VIP", Duration: "4 ชั่วโมง", Activities: "17 กิจกรรม", Highlight: "ครบทุกกิจกรรม + ขี่ม้า", Includes: []string{"ขี่ม้า 1 รอบ", "น้ำอัดลม 1 แก้ว", "ไอศกรีม 1 โคน", "Relax Zone"}},
	}
}

func defaultPromotions() []ThongsomboonPromotion {
	return []ThongsomboonPromotion{
		{Icon: "baby", Title: "เด็กเล็กเข้าฟรี", Description: "ส่วนสูงต่ำกว่า 100 ซม."},
		{Icon: "user", Title: "ผู้สูงอายุเข้าฟรี", Description: "อายุ 70 ปีขึ้นไป (แสดงบัตรประชาชน)"},
	}
}

func defaultVillaZones() []VillaZone {
	return []VillaZone{
		{ID: "kitchen", Name: "ครัว", Icon: "chef-hat", Description: "ครัวพร้อมอุปกรณ์ครบครัน"},
		{ID: "pool", Name: "สระว่ายน้ำ", Icon: "waves", Description: "สระว่ายน้ำส่วนตัว"},
		{ID: "karaoke", Name: "ห้องคาราโอเกะ", Icon: "mic", Description: "ห้องคาราโอเกะพร้อมระบบเสียง"},
		{ID: "living", Name: "ห้องนั่งเล่น", Icon: "sofa", Description: "พื้นที่นั่งเล่นกว้างขวาง"},
		{ID: "bedroom", Name: "ห้องนอน", Icon: "bed", Description: "ห้องนอน 5 ห้อง รองรับ 14 คน"},
	}
}

func defaultHouseRules() []HouseRule {
	return []HouseRule{
		{ID: "checkin", Title: "เช็คอิน-เช็คเอาท์", Content: "เช็คอิน 14:00 น. / เช็คเอาท์ 12:00 น."},
		{ID: "noise", Title: "เสียงดัง", Content: "กรุณาลดเสียงหลัง 22:00 น. เพื่อเพื่อนบ้าน"},
		{ID: "smoking", Title: "การสูบบุหรี่", Content: "สูบบุหรี่ได้เฉพาะพื้นที่กลางแจ้ง"},
		{ID: "pets", Title: "สัตว์เลี้ยง", Content: "ไม่อนุญาตให้นำสัตว์เลี้ยงเข้าพัก"},
		{ID: "waste", Title: "การจัดการขยะ", Content: "แยกขยะตามถังที่จัดเตรียมไว้"},
	}
}

func defaultEveningActivities() []EveningActivity {
	return []EveningActivity{
		{ID: "boardgames", Title: "บอร์ดเกม", Icon: "dice", Description: "เกมหลากหลายสำหรับกลุ่ม"},
		{ID: "karaoke", Title: "คาราโอเกะ", Icon: "mic", Description: "ร้องเพลงสนุก ๆ กัน"},
		{ID: "pool", Title: "เล่นน้ำ", Icon: "waves", Description: "สระว่ายน้ำเปิดถึง 22:00 น."},
		{ID: "bbq", Title: "ปิ้งย่าง", Icon: "flame", Description: "ปิ้งย่างริมสระ"},
		{ID: "photos", Title: "ถ่ายรูป", Icon: "camera", Description: "มุมถ่ายรูปสวย ๆ"},
		{ID: "chill", Title: "พักผ่อน", Icon: "coffee", Description: "นั่งเล่นคุยกัน"},
	}
}

func defaultDay2Options() []Day2Option {
	return []Day2Option{
		{ID: "cafe", Title: "คาเฟ่เช้า", Description: "แวะคาเฟ่ดัง ๆ ในเขาใหญ่", Icon: "coffee", Options: []string{"Bloom by TV Pool", "The Bloom", "Baan Suan Pai"}},
		{ID: "viewpoint", Title: "จุดชมวิว", Description: "ชมวิวภูเขาและทุ่งหญ้า", Icon: "mountain", Options: []string{"ทุ่งหญ้าสวนหิน", "จุดชมวิวเขาใหญ่"}},
		{ID: "shopping", Title: "ช้อปปิ้งของฝาก", Description: "ซื้อของฝากติดไม้ติดมือ", Icon: "shopping-bag", Options: []string{"ตลาดโชคชัย 4", "ร้านของฝากเขาใหญ่"}},
	}
}

func defaultDressCodeColors() []DressCodeColor {
	return []DressCodeColor{
		{Name: "Deep Forest", Hex: "#2F6B3C"},
		{Name: "Sage", Hex: "#A8C3A1"},
		{Name: "Terracotta", Hex: "#D17A47"},
		{Name: "Sand", Hex: "#E8DCC8"},
		{Name: "Cream", Hex: "#F5F1E8"},
		{Name: "Brown", Hex: "#8B6F47"},
	}
}

func defaultChecklistItems() []ChecklistItem {
	return []ChecklistItem{
		{ID: "clothes", Label: "เสื้อผ้าตามธีม Forest Terracotta"},
		{ID: "swimsuit", Label: "ชุดว่ายน้ำ"},
		{ID: "toiletries", Label: "อุปกรณ์ส่วนตัว"},
		{ID: "medicine", Label: "ยาประจำตัว"},
		{ID: "camera", Label: "กล้องถ่ายรูป"},
		{ID: "charger", Label: "ที่ชาร์จโทรศัพท์"},
		{ID: "sunscreen", Label: "ครีมกันแดด"},
		{ID: "hat", Label: "หมวก/แว่นกันแดด"},
	}
}

func defaultShoppingCategories() []ShoppingCategory {
	return []ShoppingCategory{
		{Icon: "beef", Name: "อาหารสด", Note: "เนื้อสัตว์ ผัก ผลไม้"},
		{Icon: "package", Name: "อาหารแห้ง", Note: "เครื่องปรุง น้ำมัน ซอส"},
		{Icon: "wine", Name: "เครื่องดื่ม", Note: "น้ำดื่ม น้ำอัดลม เบียร์"},
		{Icon: "utensils", Name: "อุปกรณ์", Note: "จาน ช้อน ถุงขยะ"},
		{Icon: "ice-cream", Name: "ของว่าง", Note: "ขนม ไอศกรีม ผลไม้"},
		{Icon: "flame", Name: "อุปกรณ์ปิ้งย่าง", Note: "ถ่าน ไม้จิ้ม ฟอยล์"},
	}
}

func defaultTathamplaphow() TathamplaphowInfo {
	return TathamplaphowInfo{
		Name:        "ตาทำปลาเผา",
		EnglishName: "Tathamplaphow Restaurant",
		Description: "ร้านอาหารไทย จีน อีสาน ต้นตำรับปลาช่อนเผาสูตรโบราณไม่ทาเกลือ",
		Phone:       "081-876-4232",
		Address:     "3 ถนนปากช่อง-สัตหีบ ต.ปากช่อง อ.ปากช่อง นครราชสีมา 30130",
		Hours:       "10:00 - 22:00 น.",
		MapURL:      "https://www.google.com/maps/place/Tathamplaphow+Restaurant",
		Atmosphere: RestaurantAtmosphere{
			Aircon:    true,
			Spacious:  true,
			Parking:   "ลานจอดรถกว้างขวาง",
			Highlight: "โซนห้องแอร์ เพดานสูง โล่งโปร่งสบาย ใกล้ชิดกับธรรมชาติ",
		},
		MenuHighlights: []MenuHighlight{
			{ID: "grilled-fish", Name: "ปลาช่อนเผา", Description: "ต้นตำรับเผาสูตรโบราณไม่ทาเกลือ ใช้เปลือกมะพร้าวและฟางเผา", Price: 250, Weight: "8 ตาถึง 1 กก.", Image: "https://images.unsplash.com/photo-1580959375944-0b9e9d447047?w=800&q=80", IsSignature: true},
			{ID: "grilled-chicken", Name: "ไก่ย่าง", Description: "ไก่ย่างสไตล์อีสาน หอมเครื่องเทศ", Price: 190, Image: "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=800&q=80"},
			{ID: "isaan-sausage", Name: "ไส้กรอกอีสาน", Description: "ไส้กรอกอีสานรสจัดจ้าน เด็ดมาก", Price: 120, Image: "https://images.unsplash.com/photo-1607330289275-8a430e8a4b1f?w=800&q=80"},
			{ID: "curry-hoi-khom", Name: "แกงคั่วหอยขม", Description: "แกงคั่วรสเข้มข้น กลมกล่อม", Price: 120, Image: "https://images.unsplash.com/photo-1604908815879-f9d71e0e9b0c?w=800&q=80"},
			{ID: "yam-pla-kapong", Name: "ยำปลากะพงกรอบ", Description: "ยำปลากรอบ รสจัดจ้าน เปรี้ยว เผ็ด อร่อย", Price: 300, Image: "https://images.unsplash.com/photo-1562565652-a0d8f0c59eb4?w=800&q=80"},
			{ID: "fried-cabbage", Name: "กะหล่ำปลีผัดน้ำปลา", Description: "ผักกะหล่ำปลีผัดสไตล์ไทย", Price: 90, Image: "https://images.unsplash.com/photo-1604999565976-8913ad2ddb7c?w=800&q=80"},
		},
		Specialties: []string{
			"ปลาช่อนเผาต้นตำรับสูตรโบราณ",
			"อาหารไทย จีน อีสาน รสชาติต้นตำรับ",
			"วัตถุดิบสดใหม่ทุกวัน",
			"จานอาหารขนาดใหญ่ เหมาะกับกลุ่ม",
		},
		Tips: []string{
			"แนะนำจองล่วงหน้าสำหรับกลุ่มใหญ่",
			"จานอาหารขนาดใหญ่ เหมาะสำหรับแชร์",
			"ร้านเปิด 10:00 น. พอดีกับเวลานัดพบ",
		},
	}
}

func defaultBreakfastSpots() []BreakfastSpot {
	imgs := defaultImageURLs()
	return []BreakfastSpot{
		{ID: "cafe-amazon", Name: "Café Amazon ปากช่อง", Description: "คาเฟ่สะดวก อาหารเช้าหลากหลาย", Image: imgs["cafeAmazon"], MapURL: "https://maps.google.com/?q=Cafe+Amazon+Pak+Chong"},
		{ID: "krua-khao-yai", Name: "ครัวเขาใหญ่", Description: "อาหารไทยรสชาติดี บรรยากาศดี", Image: imgs["breakfastKrua"], MapURL: "https://maps.google.com/?q=Krua+Khao+Yai+Restaurant"},
	}
}
