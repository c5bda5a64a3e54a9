package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	id := language.Indonesian
	message.SetString(id, KeyMobileNotice, "📱 Tampilan ini tidak tersedia di perangkat seluler.")
	message.SetString(id, KeyMobileHint, "Silakan buka lewat laptop atau desktop untuk pengalaman penuh 💻")
	message.SetString(id, KeyUnavailable, "Aplikasi untuk halaman ini belum dikonfigurasi.")
	message.SetString(id, KeyNotFound, "Halaman tidak ditemukan")
	message.SetString(id, KeyInternal, "Terjadi kesalahan")
	message.SetString(id, KeyBackHome, "Kembali ke beranda")

	en := language.AmericanEnglish
	message.SetString(en, KeyMobileNotice, "📱 This view is not available on mobile devices.")
	message.SetString(en, KeyMobileHint, "Please open it on a laptop or desktop for the full experience 💻")
	message.SetString(en, KeyUnavailable, "No application is configured for this page.")
	message.SetString(en, KeyNotFound, "Page not found")
	message.SetString(en, KeyInternal, "Something went wrong")
	message.SetString(en, KeyBackHome, "Back to home")
}
