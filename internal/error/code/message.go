package code

// Hata kodu -> kullanıcıya dönen mesaj eşlemesi
var codeMessageMap = map[int]string{
	// Genel hata kodları
	ErrSuccess:         "Başarılı",
	ErrUnknown:         "Sunucu hatası oluştu. Lütfen daha sonra tekrar deneyin",
	ErrBind:            "Geçersiz istek gövdesi",
	ErrValidation:      "İstek doğrulama hatası",
	ErrUnauthorized:    "Unauthorized",
	ErrTooManyRequests: "Çok fazla istek gönderildi. Lütfen daha sonra tekrar deneyin",
	ErrConfiguration:   "Sunucu hatası oluştu. Lütfen daha sonra tekrar deneyin",

	// Kimlik doğrulama
	ErrLoginFailed: "Geçersiz e-posta veya şifre",

	// Blog
	ErrPostNotFound:       "Blog yazısı bulunamadı",
	ErrPostFieldsRequired: "Başlık, içerik ve slug alanları zorunludur",
	ErrSlugTaken:          "Bu slug zaten kullanılıyor",
	ErrInvalidPostID:      "Geçersiz yazı kimliği",

	// İletişim
	ErrContactFieldsRequired: "İsim, e-posta ve mesaj alanları zorunludur",
	ErrMessageNotFound:       "Mesaj bulunamadı",
	ErrInvalidStatus:         "Geçersiz mesaj durumu",

	// İçerik ve ayarlar
	ErrSectionRequired: "Section parametresi zorunludur",

	// Yükleme
	ErrFilenameRequired: "Dosya adı zorunludur",
	ErrUploadFailed:     "Dosya yüklenemedi. Lütfen daha sonra tekrar deneyin",
	ErrEmptyFile:        "Dosya içeriği boş olamaz",

	// Veritabanı
	ErrDatabase: "Sunucu hatası oluştu. Lütfen daha sonra tekrar deneyin",
}

// Hata kodu -> HTTP durum kodu eşlemesi
var codeStatusMap = map[int]int{
	// Genel hata kodları
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrUnauthorized:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrConfiguration:   StatusInternalServerError,

	// Kimlik doğrulama
	ErrLoginFailed: StatusUnauthorized,

	// Blog
	ErrPostNotFound:       StatusNotFound,
	ErrPostFieldsRequired: StatusBadRequest,
	ErrSlugTaken:          StatusBadRequest,
	ErrInvalidPostID:      StatusBadRequest,

	// İletişim
	ErrContactFieldsRequired: StatusBadRequest,
	ErrMessageNotFound:       StatusNotFound,
	ErrInvalidStatus:         StatusBadRequest,

	// İçerik ve ayarlar
	ErrSectionRequired: StatusBadRequest,

	// Yükleme
	ErrFilenameRequired: StatusBadRequest,
	ErrUploadFailed:     StatusInternalServerError,
	ErrEmptyFile:        StatusBadRequest,

	// Veritabanı
	ErrDatabase: StatusInternalServerError,
}

// GetMessage hata koduna karşılık gelen mesajı döndürür
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Sunucu hatası oluştu. Lütfen daha sonra tekrar deneyin"
}

// GetStatus hata koduna karşılık gelen HTTP durum kodunu döndürür
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
