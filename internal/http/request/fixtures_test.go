package request

import (
	"strconv"
	"strings"
)

const (
	simpleGET = "GET / HTTP/1.1\r\nHost: www.codecademy.com\r\n\r\n"

	anotherGET = "GET /docs/index.html HTTP/1.1\r\n" +
		"Host: www.nowhere123.com\r\n" +
		"Accept: image/gif, image/jpeg, */*\r\n" +
		"Accept-Language: en-us\r\n" +
		"Accept-Encoding: gzip, deflate\r\n" +
		"User-Agent: Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1)\r\n" +
		"\r\n"

	stackedHeadersGET = "GET /index.html HTTP/1.1\r\n" +
		"Host: www.nowhere123.com\r\n" +
		"Accept: image/gif,\r\n" +
		" image/jpeg,\r\n" +
		" */*\r\n" +
		"Accept-Language: en-us\r\n" +
		"\r\n"

	simplePOSTBody = "content=hi+there&licenseID=1234&paramsXML=%3Cabc%3E%3C%2Fabc%3E"

	simplePOST2Body = "name=Bobert&age=50-99"

	badGET = "GET / HTTP/1.1\r\nHost: www.codecademy.com\r\nX-Bad\x01Name: yes\r\n\r\n"

	badGET2 = "GET / HTTP/1.1\r\nHost www.codecademy.com\r\n\r\n"

	badPOST2 = "POST /cgi-bin/process.cgi HTTP/1.1\r\n" +
		"Host: www.tutorialspoint.com\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"Content-Length: 500\r\n" +
		"\r\n" +
		"content=hi"

	multipartBoundary = "---------------------------63696236615513812933444437561"

	// fuzzedPOST keeps a valid head around mangled header values and
	// binary junk after the declared body.
	fuzzedPOST = "POST /Ogk/process.cgi HTTP/1.1\r\n" +
		"User-Agent: Mozilla/4.0 (compatible;\x8f\xe2MSIE5.01; Windows NT)\r\n" +
		"Host: www.tutorialspo\xffint.com\r\n" +
		"X-Fuzz!#$%&'*+.^_`|~: \t;;==,,\x7f\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"Content-Length: 13\r\n" +
		"Accept-Language:\r\n" +
		"\r\n" +
		"a=%zz&=&b+c=%" +
		"\x00\x01\xfe\r\n\r\nGET\x00 / HTTP/9.9\r\n"
)

var bigHeaderValue = strings.Repeat("gWbWykBHgObDHriErqIKRBqebBekBpHsqUJqQcDtDctkaeeFBwNelgvzigaEkUPKAfcnYGhgbzDOvGumdewDzCqOantKfsvaZugg", 9)[:850]

func bigGET() string {
	return "GET /big HTTP/1.1\r\n" +
		"Host: www.nowhere123.com\r\n" +
		"X-SOME-HEADER: " + bigHeaderValue[:300] + "\r\n" +
		"X-SOMEOTHER-HEADER: " + bigHeaderValue[:500] + "\r\n" +
		"X-ONEMORE-HEADER: " + bigHeaderValue + "\r\n" +
		"\r\n"
}

func badBigHeaders() string {
	var sb strings.Builder
	sb.WriteString("GET /big HTTP/1.1\r\nHost: www.nowhere123.com\r\n")
	for i := 0; i < 64; i++ {
		sb.WriteString("X-FILLER-HEADER: " + bigHeaderValue + "\r\n")
	}
	sb.WriteString("\r\n")
	return sb.String()
}

func simplePOST() string {
	return "POST /cgi-bin/process.cgi HTTP/1.1\r\n" +
		"User-Agent: Mozilla/4.0 (compatible; MSIE5.01; Windows NT)\r\n" +
		"Host: www.tutorialspoint.com\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"Content-Length: " + strconv.Itoa(len(simplePOSTBody)) + "\r\n" +
		"Accept-Language: en-us\r\n" +
		"Accept-Encoding: gzip, deflate\r\n" +
		"Connection: Keep-Alive\r\n" +
		"\r\n" +
		simplePOSTBody
}

func simplePOST2() string {
	return "POST / HTTP/1.1\r\n" +
		"Host: localhost:7667\r\n" +
		"Connection: keep-alive\r\n" +
		"Content-Length: " + strconv.Itoa(len(simplePOST2Body)) + "\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"User-Agent: Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/83.0.4103.97 Safari/537.36\r\n" +
		"\r\n" +
		simplePOST2Body
}

var (
	moveRS   = strings.Repeat("fn main() { let s = String::from(\"hi\"); takes(s); }\n", 11)[:523]
	borrowRS = strings.Repeat("let r = &s;\n", 18)[:208]
)

func multipartBody() string {
	return "--" + multipartBoundary + "\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"move.rs\"\r\n" +
		"Content-Type: application/rls-services+xml\r\n" +
		"\r\n" +
		moveRS + "\r\n" +
		"--" + multipartBoundary + "\r\n" +
		"Content-Disposition: form-data; name=\"file2\"; filename=\"borrow.rs\"\r\n" +
		"Content-Type: application/rls-services+xml\r\n" +
		"\r\n" +
		borrowRS + "\r\n" +
		"--" + multipartBoundary + "--\r\n"
}

func multipartPOST() string {
	b := multipartBody()
	return "POST /upload HTTP/1.1\r\n" +
		"Host: localhost:7667\r\n" +
		"Content-Type: multipart/form-data; boundary=" + multipartBoundary + "\r\n" +
		"Content-Length: " + strconv.Itoa(len(b)) + "\r\n" +
		"\r\n" +
		b
}
