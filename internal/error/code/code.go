package code

// HTTP durum kodları.
const (
	// StatusOK - 200: Başarılı.
	StatusOK = 200
	// StatusBadRequest - 400: İstek parametreleri hatalı.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: Yetkisiz erişim.
	StatusUnauthorized = 401
	// StatusForbidden - 403: Erişim engellendi.
	StatusForbidden = 403
	// StatusNotFound - 404: Kayıt bulunamadı.
	StatusNotFound = 404
	// StatusInternalServerError - 500: Sunucu iç hatası.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: Çok fazla istek.
	StatusTooManyRequests = 429
)

// Genel hata kodları (100xxx).
const (
	// ErrSuccess - 200: Başarılı.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: Bilinmeyen hata.
	ErrUnknown
	// ErrBind - 400: İstek gövdesi çözümlenemedi.
	ErrBind
	// ErrValidation - 400: İstek doğrulama hatası.
	ErrValidation
	// ErrUnauthorized - 401: Geçersiz veya eksik kimlik.
	ErrUnauthorized
	// ErrTooManyRequests - 429: İstek sıklığı aşıldı.
	ErrTooManyRequests
	// ErrConfiguration - 500: Sunucu yapılandırması eksik.
	ErrConfiguration
)

// Kimlik doğrulama hata kodları (101xxx).
const (
	// ErrLoginFailed - 401: E-posta veya şifre hatalı.
	ErrLoginFailed int = iota + 101000
)

// Blog hata kodları (102xxx).
const (
	// ErrPostNotFound - 404: Blog yazısı bulunamadı.
	ErrPostNotFound int = iota + 102000
	// ErrPostFieldsRequired - 400: Zorunlu blog alanları eksik.
	ErrPostFieldsRequired
	// ErrSlugTaken - 400: Slug başka bir yazı tarafından kullanılıyor.
	ErrSlugTaken
	// ErrInvalidPostID - 400: Geçersiz yazı kimliği.
	ErrInvalidPostID
)

// İletişim hata kodları (103xxx).
const (
	// ErrContactFieldsRequired - 400: Zorunlu iletişim alanları eksik.
	ErrContactFieldsRequired int = iota + 103000
	// ErrMessageNotFound - 404: İletişim mesajı bulunamadı.
	ErrMessageNotFound
	// ErrInvalidStatus - 400: Geçersiz mesaj durumu.
	ErrInvalidStatus
)

// İçerik ve ayar hata kodları (104xxx).
const (
	// ErrSectionRequired - 400: Section parametresi eksik.
	ErrSectionRequired int = iota + 104000
)

// Yükleme hata kodları (105xxx).
const (
	// ErrFilenameRequired - 400: Dosya adı eksik.
	ErrFilenameRequired int = iota + 105000
	// ErrUploadFailed - 500: Dosya yüklemesi başarısız.
	ErrUploadFailed
	// ErrEmptyFile - 400: Boş dosya gövdesi.
	ErrEmptyFile
)

// Veritabanı hata kodları (106xxx).
const (
	// ErrDatabase - 500: Veritabanı hatası.
	ErrDatabase int = iota + 106000
)
