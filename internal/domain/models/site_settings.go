package models

import "time"

// SiteSettingsID sabit tekil doküman kimliği
const SiteSettingsID = "global"

// SiteColors site genelinde kullanılan renk paleti
type SiteColors struct {
	Primary   string `bson:"primary" json:"primary"`
	Secondary string `bson:"secondary" json:"secondary"`
	Accent    string `bson:"accent,omitempty" json:"accent,omitempty"`
}

// SocialLinks sosyal medya bağlantıları
type SocialLinks struct {
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
}

// ContactInfo iletişim bilgileri
type ContactInfo struct {
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// SEOSettings varsayılan SEO alanları
type SEOSettings struct {
	Title       string   `bson:"title,omitempty" json:"title,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

// AnalyticsSettings isteğe bağlı analitik yapılandırması
type AnalyticsSettings struct {
	GoogleAnalyticsID string `bson:"googleAnalyticsId,omitempty" json:"googleAnalyticsId,omitempty"`
}

// MaintenanceSettings isteğe bağlı bakım modu
type MaintenanceSettings struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Message string `bson:"message,omitempty" json:"message,omitempty"`
}

// SiteSettings site genelindeki yapılandırmayı tutan tekil doküman.
// Her an en fazla bir canlı kayıt bulunur (_id: "global").
// Collection: siteSettings
type SiteSettings struct {
	ID          string               `bson:"_id" json:"_id"`
	SiteName    string               `bson:"siteName" json:"siteName"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Colors      SiteColors           `bson:"colors" json:"colors"`
	Social      SocialLinks          `bson:"social" json:"social"`
	Contact     ContactInfo          `bson:"contact" json:"contact"`
	SEO         SEOSettings          `bson:"seo" json:"seo"`
	Analytics   *AnalyticsSettings   `bson:"analytics,omitempty" json:"analytics,omitempty"`
	Maintenance *MaintenanceSettings `bson:"maintenance,omitempty" json:"maintenance,omitempty"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy   string               `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// DefaultSiteSettings kayıt bulunmadığında dönen süreç içi varsayılanlar
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:          SiteSettingsID,
		SiteName:    "HMZ Solutions",
		Description: "Yazılım ve dijital çözümler",
		Colors: SiteColors{
			Primary:   "#0f172a",
			Secondary: "#3b82f6",
		},
		SEO: SEOSettings{
			Title:       "HMZ Solutions",
			Description: "Yazılım ve dijital çözümler",
		},
	}
}
