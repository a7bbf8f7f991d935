// Package share builds social share links and QR codes for the download page.
//
// Build returns the copy link plus Twitter, Facebook and LinkedIn share
// URLs for a page:
//
//	links, err := share.Build(share.Page{URL: "https://apps.example.com/download"})
//	if err != nil {
//		// share.ErrEmptyURL or share.ErrInvalidURL
//	}
//	_ = links.Twitter
//
// QRCode and QRCodeDataURI wrap github.com/skip2/go-qrcode and return a PNG
// or a data URI that can be used directly in an <img> tag.
package share
