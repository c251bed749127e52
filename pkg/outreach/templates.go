package outreach

import "fmt"

// SMSText builds the Albanian outreach message for one business.
func SMSText(businessName string) string {
	return fmt.Sprintf(`Pershendetje %s,

Jemi iProPixel Solutions, agjenci e zhvillimit te faqeve web. Po ofrojme 80%% zbritje per biznese lokale.

Vizitoni: ipropixel.com
WhatsApp: +355 68 227 7167

Faleminderit!`, businessName)
}

// EmailPlainText is the plain-text body of the outreach email.
func EmailPlainText() string {
	return `Përshëndetje,

Shpresoj t'ju gjej mirë.

Jemi iProPixel Solutions, një agjenci e zhvillimit të faqeve web dhe aplikacioneve, dhe po kontaktojmë biznese lokale për t'ju ofruar mundësinë e krijimit ose përmirësimit të prezencës së tyre online.

Nëse aktualisht keni një faqe web, ne mund ta ridizajnojmë dhe përmirësojmë për ta bërë më moderne, më të shpejtë dhe më efektive për klientët tuaj. Nëse nuk keni ende një faqe web, mund t'ju krijojmë një website profesional nga fillimi, i personalizuar sipas nevojave tuaja.

Aktualisht po ofrojmë një promocion me 80% zbritje në shërbimet tona për një numër të kufizuar biznesesh.

Nëse jeni të interesuar, do të na vinte kënaqësi të diskutojmë më tej dhe t'ju prezantojmë disa shembuj pune.

Faleminderit për kohën tuaj,

iProPixel Solutions

Website: https://ipropixel.com
Tel / WhatsApp: +355 68 227 7167
Email: info@ipropixel.com

---
Digital Agency | Tiranë, Shqipëri
ipropixel.com | info@ipropixel.com | +355 68 227 7167
Nëse nuk dëshironi të merrni email të tjera, ju lutem na shkruani në info@ipropixel.com me subjektin "Unsubscribe".`
}

// EmailHTML is the HTML body of the outreach email.
func EmailHTML() string {
	return `<!DOCTYPE html>
<html lang="sq">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>iProPixel Solutions</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f7;">
    <tr>
      <td align="center" style="padding:40px 20px;">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
          <tr>
            <td style="background-color:#1a1a2e;padding:32px 40px;text-align:center;">
              <h1 style="margin:0;color:#ffffff;font-size:24px;font-weight:700;letter-spacing:0.5px;">iProPixel Solutions</h1>
              <p style="margin:8px 0 0;color:#a0a0c0;font-size:13px;">Digital Agency | Tiranë, Shqipëri</p>
            </td>
          </tr>
          <tr>
            <td style="padding:40px;">
              <h2 style="margin:0 0 20px;color:#1a1a2e;font-size:18px;">Përshëndetje,</h2>
              <p style="margin:0 0 16px;color:#4a4a68;font-size:15px;line-height:1.6;">
                Shpresoj t'ju gjej mirë.
              </p>
              <p style="margin:0 0 16px;color:#4a4a68;font-size:15px;line-height:1.6;">
                Jemi <strong>iProPixel Solutions</strong>, një agjenci e zhvillimit të faqeve web dhe aplikacioneve, dhe po kontaktojmë biznese lokale për t'ju ofruar mundësinë e krijimit ose përmirësimit të prezencës së tyre online.
              </p>
              <p style="margin:0 0 16px;color:#4a4a68;font-size:15px;line-height:1.6;">
                Nëse aktualisht keni një faqe web, ne mund ta ridizajnojmë dhe përmirësojmë për ta bërë më moderne, më të shpejtë dhe më efektive për klientët tuaj. Nëse nuk keni ende një faqe web, mund t'ju krijojmë një website profesional nga fillimi, i personalizuar sipas nevojave tuaja.
              </p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
                <tr>
                  <td style="padding:16px 20px;background-color:#fff3e0;border-left:4px solid #ff9800;border-radius:0 6px 6px 0;">
                    <p style="margin:0;color:#e65100;font-size:15px;font-weight:700;line-height:1.6;">
                      Aktualisht po ofrojmë një promocion me 80% zbritje në shërbimet tona për një numër të kufizuar biznesesh.
                    </p>
                  </td>
                </tr>
              </table>
              <p style="margin:0 0 24px;color:#4a4a68;font-size:15px;line-height:1.6;">
                Nëse jeni të interesuar, do të na vinte kënaqësi të diskutojmë më tej dhe t'ju prezantojmë disa shembuj pune.
              </p>
              <p style="margin:0 0 24px;color:#4a4a68;font-size:15px;line-height:1.6;">
                Faleminderit për kohën tuaj,
              </p>
              <p style="margin:0 0 24px;color:#1a1a2e;font-size:15px;font-weight:700;">
                iProPixel Solutions
              </p>
              <table role="presentation" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
                <tr>
                  <td style="border-radius:6px;background-color:#1a1a2e;">
                    <a href="https://ipropixel.com" style="display:inline-block;padding:14px 32px;color:#ffffff;font-size:15px;font-weight:600;text-decoration:none;">Vizitoni Website</a>
                  </td>
                  <td style="width:12px;"></td>
                  <td style="border-radius:6px;background-color:#25D366;">
                    <a href="https://wa.me/355682277167" style="display:inline-block;padding:14px 32px;color:#ffffff;font-size:15px;font-weight:600;text-decoration:none;">WhatsApp</a>
                  </td>
                </tr>
              </table>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
                <tr>
                  <td style="padding:16px;background-color:#f0f0ff;border-radius:6px;">
                    <p style="margin:0 0 8px;color:#4a4a68;font-size:14px;"><strong>Website:</strong> <a href="https://ipropixel.com" style="color:#1a1a2e;text-decoration:underline;">ipropixel.com</a></p>
                    <p style="margin:0 0 8px;color:#4a4a68;font-size:14px;"><strong>Tel / WhatsApp:</strong> <a href="tel:+355682277167" style="color:#1a1a2e;text-decoration:underline;">+355 68 227 7167</a></p>
                    <p style="margin:0;color:#4a4a68;font-size:14px;"><strong>Email:</strong> <a href="mailto:info@ipropixel.com" style="color:#1a1a2e;text-decoration:underline;">info@ipropixel.com</a></p>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="background-color:#f9f9fc;padding:24px 40px;border-top:1px solid #e8e8f0;">
              <p style="margin:0 0 8px;color:#8a8aa0;font-size:13px;text-align:center;">
                Digital Agency | Tiranë, Shqipëri
              </p>
              <p style="margin:0 0 8px;color:#8a8aa0;font-size:13px;text-align:center;">
                <a href="https://ipropixel.com" style="color:#8a8aa0;">ipropixel.com</a> | info@ipropixel.com | <a href="tel:+355682277167" style="color:#8a8aa0;">+355 68 227 7167</a>
              </p>
              <p style="margin:0;color:#b0b0c0;font-size:11px;text-align:center;">
                Nëse nuk dëshironi të merrni email të tjera, ju lutem na shkruani në info@ipropixel.com me subjektin "Unsubscribe".
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
}
