package services

import (
	"fmt"
	"net/url"
	"strings"

	"findflow/internal/models/response_models"
)

// fallbackEntry is one hand-authored product suggestion. PriceCeiling is the
// category-typical price; the rendered price is the user's budget maximum
// capped at this ceiling.
type fallbackEntry struct {
	Title          string
	PriceCeiling   float64
	Features       []string
	Pros           []string
	Cons           []string
	MatchScore     int
	SourceSite     string
	ProductURL     string
	LinkMessage    string
	WhyRecommended string
}

var fallbackCatalog = map[string][]fallbackEntry{
	"Drone": {
		{
			Title:          "DJI Mini 3",
			PriceCeiling:   15000,
			Features:       []string{"4K Kamera", "38 Dakika Uçuş", "Katlanabilir Tasarım", "GPS"},
			Pros:           []string{"Güvenilir marka", "Uzun uçuş süresi", "Kompakt taşınabilir"},
			Cons:           []string{"Yüksek fiyat", "Rüzgara hassas"},
			MatchScore:     90,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=dji+mini+3+drone",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Başlangıç seviyesi için mükemmel drone",
		},
		{
			Title:          "DJI Air 2S",
			PriceCeiling:   25000,
			Features:       []string{"5.4K Video", "31 Dakika Uçuş", "Engel Algılama", "1 inch Sensör"},
			Pros:           []string{"Profesyonel kalite", "Güçlü özellikler", "İleri seviye kamera"},
			Cons:           []string{"Pahalı", "Ağır"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=dji+air+2s+drone",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Profesyonel çekimler için ideal",
		},
		{
			Title:          "Hubsan H117S Zino",
			PriceCeiling:   8000,
			Features:       []string{"4K Kamera", "23 Dakika Uçuş", "1km Menzil", "GPS Return"},
			Pros:           []string{"Uygun fiyat", "İyi kamera", "Kolay kullanım"},
			Cons:           []string{"Daha kısa uçuş süresi", "Sınırlı özellikler"},
			MatchScore:     75,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=hubsan+zino+drone",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "Bütçe dostu seçenek",
		},
	},
	"Phone": {
		{
			Title:          "Samsung Galaxy A54 5G 128GB",
			PriceCeiling:   15000,
			Features:       []string{"5G Destekli", "128GB Depolama", "50MP Kamera", "5000mAh Pil"},
			Pros:           []string{"Güvenilir marka", "Uzun pil ömrü", "İyi kamera"},
			Cons:           []string{"Orta segment işlemci"},
			MatchScore:     80,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=samsung+galaxy+a54+5g",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Güvenilir orta segment telefon",
		},
		{
			Title:          "Xiaomi Redmi Note 12 256GB",
			PriceCeiling:   10000,
			Features:       []string{"256GB Depolama", "48MP Kamera", "5000mAh Pil", "Hızlı Şarj"},
			Pros:           []string{"Büyük depolama", "Uygun fiyat", "Hızlı şarj"},
			Cons:           []string{"MIUI arayüzü"},
			MatchScore:     75,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=xiaomi+redmi+note+12+256gb",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "Fiyat/performans odaklı seçim",
		},
		{
			Title:          "iPhone 13 128GB (Yenilenmiş)",
			PriceCeiling:   20000,
			Features:       []string{"A15 Bionic Chip", "128GB Depolama", "Dual Kamera", "Face ID"},
			Pros:           []string{"iOS ekosistemi", "Premium yapı", "Uzun destek"},
			Cons:           []string{"Yenilenmiş ürün", "Yüksek fiyat"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=iphone+13+128gb",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Apple kullanıcıları için uygun seçenek",
		},
	},
	"Headphones": {
		{
			Title:          "Sony WH-1000XM5",
			PriceCeiling:   12000,
			Features:       []string{"Üst Seviye ANC", "30 Saat Pil", "Kablosuz", "Premium Ses"},
			Pros:           []string{"Mükemmel ses kalitesi", "Güçlü gürültü engelleme", "Konforlu"},
			Cons:           []string{"Pahalı", "Büyük boyut"},
			MatchScore:     90,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=sony+wh-1000xm5",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Premium ses deneyimi için ideal",
		},
		{
			Title:          "Apple AirPods Pro 2",
			PriceCeiling:   8000,
			Features:       []string{"Uzamsal Ses", "ANC", "İOS Entegrasyonu", "Kablosuz Şarj"},
			Pros:           []string{"Apple ekosistemi", "Kompakt tasarım", "İyi ANC"},
			Cons:           []string{"İOS odaklı", "Pahalı"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=apple+airpods+pro+2",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Apple kullanıcıları için mükemmel",
		},
		{
			Title:          "JBL Tune 770NC",
			PriceCeiling:   3000,
			Features:       []string{"ANC", "Bluetooth", "70 Saat Pil", "Hızlı Şarj"},
			Pros:           []string{"Uygun fiyat", "Uzun pil ömrü", "İyi ses"},
			Cons:           []string{"Orta seviye build quality"},
			MatchScore:     75,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=jbl+tune+770nc",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "Bütçe dostu ANC kulaklık",
		},
	},
	"Klima": {
		{
			Title:          "Daikin FTXM35R Comfora",
			PriceCeiling:   25000,
			Features:       []string{"Inverter", "A++ Enerji", "12.000 BTU", "R32 Gaz"},
			Pros:           []string{"Güvenilir marka", "Sessiz çalışma", "Enerji tasarrufu"},
			Cons:           []string{"Yüksek fiyat", "Kurulum gerekli"},
			MatchScore:     90,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=daikin+comfora+klima",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Premium kalite ve enerji tasarrufu",
		},
		{
			Title:          "Mitsubishi MSZ-HR25VF",
			PriceCeiling:   20000,
			Features:       []string{"Inverter", "Wi-Fi", "9.000 BTU", "Plasma Quad Plus"},
			Pros:           []string{"Japon teknolojisi", "Akıllı özellikler", "Güçlü soğutma"},
			Cons:           []string{"Pahalı servis", "Karmaşık kumanda"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=mitsubishi+klima",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Teknoloji ve kalite odaklı",
		},
		{
			Title:          "Arçelik Inverter 12570 EI",
			PriceCeiling:   15000,
			Features:       []string{"Inverter", "A+ Enerji", "12.000 BTU", "10 Yıl Garanti"},
			Pros:           []string{"Türk markası", "Uygun fiyat", "Yaygın servis"},
			Cons:           []string{"Daha az özellik", "Ses seviyesi"},
			MatchScore:     75,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=arcelik+inverter+klima",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "Yerli üretim güvenilir seçenek",
		},
	},
	"Television": {
		{
			Title:          "Samsung 55\" QN90C Neo QLED",
			PriceCeiling:   40000,
			Features:       []string{"4K", "Neo QLED", "Quantum Matrix", "Tizen OS"},
			Pros:           []string{"Mükemmel görüntü", "Akıllı özellikler", "Premium tasarım"},
			Cons:           []string{"Pahalı", "Karmaşık menüler"},
			MatchScore:     90,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=samsung+55+qn90c+neo+qled",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Premium görüntü kalitesi",
		},
		{
			Title:          "LG 55\" C3 OLED evo",
			PriceCeiling:   35000,
			Features:       []string{"4K OLED", "WebOS", "Dolby Vision", "120Hz"},
			Pros:           []string{"OLED teknolojisi", "Sinema kalitesi", "Gaming desteği"},
			Cons:           []string{"Burn-in riski", "Parlak ortamlarda sorun"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=lg+55+c3+oled",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Sinema ve oyun deneyimi",
		},
		{
			Title:          "Xiaomi TV A2 43\"",
			PriceCeiling:   8000,
			Features:       []string{"4K HDR", "Android TV", "Dolby Audio", "Chromecast"},
			Pros:           []string{"Uygun fiyat", "Android TV", "İyi özellikler"},
			Cons:           []string{"Orta seviye panel", "Ses kalitesi"},
			MatchScore:     75,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=xiaomi+tv+a2+43",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "Bütçe dostu akıllı TV",
		},
	},
	"Tire": {
		{
			Title:          "Michelin Pilot Sport 4 225/45 R17",
			PriceCeiling:   2500,
			Features:       []string{"Spor Lastik", "Yüksek Performans", "Islak Yol Tutuşu", "Uzun Ömür"},
			Pros:           []string{"Mükemmel tutuş", "Premium marka", "Güvenli"},
			Cons:           []string{"Pahalı", "Gürültü seviyesi"},
			MatchScore:     90,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=michelin+pilot+sport+4",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Premium performans lastiği",
		},
		{
			Title:          "Bridgestone Turanza T005 205/55 R16",
			PriceCeiling:   1800,
			Features:       []string{"Konfor Odaklı", "Düşük Gürültü", "Enerji Tasarrufu", "Uzun Ömür"},
			Pros:           []string{"Konforlu sürüş", "Güvenilir marka", "Dayanıklı"},
			Cons:           []string{"Spor performans sınırlı"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=bridgestone+turanza+t005",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Konfor ve güvenlik odaklı",
		},
		{
			Title:          "Lassa Competus H/P 215/60 R17",
			PriceCeiling:   1200,
			Features:       []string{"SUV Lastiği", "Türk Malı", "Uygun Fiyat", "Dört Mevsim"},
			Pros:           []string{"Uygun fiyat", "Yerli üretim", "SUV uyumlu"},
			Cons:           []string{"Performans sınırlı", "Gürültü"},
			MatchScore:     75,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=lassa+competus+suv+lastik",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "Bütçe dostu yerli seçenek",
		},
	},
	"Telefon": {
		{
			Title:          "iPhone 15 128GB",
			PriceCeiling:   35000,
			Features:       []string{"A17 Pro Chip", "48MP Kamera", "iOS 17", "USB-C"},
			Pros:           []string{"Premium performans", "Uzun destek", "Mükemmel kamera"},
			Cons:           []string{"Pahalı", "Lightning yerine USB-C"},
			MatchScore:     90,
			SourceSite:     "hepsiburada.com",
			ProductURL:     "https://www.hepsiburada.com/ara?q=iphone+15+128gb",
			LinkMessage:    "Hepsiburada arama sayfası",
			WhyRecommended: "Premium iPhone deneyimi",
		},
		{
			Title:          "Samsung Galaxy S23 256GB",
			PriceCeiling:   25000,
			Features:       []string{"Snapdragon 8 Gen 2", "50MP Kamera", "Android 14", "8GB RAM"},
			Pros:           []string{"Güçlü performans", "İyi kamera", "Samsung ekosistemi"},
			Cons:           []string{"OneUI arayüzü", "Pil ömrü"},
			MatchScore:     85,
			SourceSite:     "teknosa.com",
			ProductURL:     "https://www.teknosa.com/arama?q=samsung+galaxy+s23+256gb",
			LinkMessage:    "Teknosa arama sayfası",
			WhyRecommended: "Android flagship deneyimi",
		},
		{
			Title:          "Xiaomi Redmi Note 13 Pro 256GB",
			PriceCeiling:   12000,
			Features:       []string{"Dimensity 7200", "200MP Kamera", "AMOLED Ekran", "67W Şarj"},
			Pros:           []string{"Fiyat/performans", "Hızlı şarj", "İyi ekran"},
			Cons:           []string{"MIUI arayüzü", "Plastik gövde"},
			MatchScore:     80,
			SourceSite:     "trendyol.com",
			ProductURL:     "https://www.trendyol.com/sr?q=xiaomi+redmi+note+13+pro",
			LinkMessage:    "Trendyol arama sayfası",
			WhyRecommended: "En iyi fiyat/performans",
		},
	},
}

// FallbackRecommendations returns the static suggestions for a category,
// with each price scaled to the user's budget maximum capped at the entry's
// typical price. Unknown categories get one generic placeholder.
func FallbackRecommendations(category string, budgetMin, budgetMax *int) []response_models.Product {
	entries, ok := fallbackCatalog[category]
	if !ok {
		return []response_models.Product{genericFallback(category, budgetMin)}
	}

	products := make([]response_models.Product, 0, len(entries))
	for _, entry := range entries {
		value := entry.PriceCeiling
		if budgetMax != nil && float64(*budgetMax) < value {
			value = float64(*budgetMax)
		}
		products = append(products, response_models.Product{
			Title: entry.Title,
			Price: response_models.Price{
				Value:    value,
				Currency: "TRY",
				Display:  fmt.Sprintf("%.0f ₺", value),
			},
			Features:       entry.Features,
			Pros:           entry.Pros,
			Cons:           entry.Cons,
			MatchScore:     entry.MatchScore,
			SourceSite:     entry.SourceSite,
			ProductURL:     entry.ProductURL,
			LinkStatus:     response_models.SourceFallback,
			LinkMessage:    entry.LinkMessage,
			WhyRecommended: entry.WhyRecommended,
		})
	}
	return products
}

func genericFallback(category string, budgetMin *int) response_models.Product {
	value := 1000.0
	if budgetMin != nil {
		value = float64(*budgetMin)
	}
	return response_models.Product{
		Title: fmt.Sprintf("Önerilen %s", category),
		Price: response_models.Price{
			Value:    value,
			Currency: "TRY",
			Display:  fmt.Sprintf("%.0f ₺", value),
		},
		Features:       []string{"Kaliteli", "Güvenilir"},
		Pros:           []string{"İyi performans"},
		Cons:           []string{"Sınırlı bilgi"},
		MatchScore:     75,
		SourceSite:     "hepsiburada.com",
		ProductURL:     "https://www.hepsiburada.com/ara?q=" + url.QueryEscape(strings.ToLower(category)),
		LinkStatus:     response_models.SourceFallback,
		LinkMessage:    "Hepsiburada arama sayfası",
		WhyRecommended: "Genel öneri - detaylı arama yapılamadı",
	}
}
