package playerjs

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

// Decipherer handles signature deciphering and n-parameter transformation
// for one player JS body.
type Decipherer struct {
	jsBody []byte
}

func NewDecipherer(jsBody string) *Decipherer {
	return &Decipherer{jsBody: []byte(jsBody)}
}

// DecipherSignature deciphers the 's' parameter of a signature cipher.
func (d *Decipherer) DecipherSignature(s string) (string, error) {
	ops, err := d.parseDecipherOps()
	if err != nil {
		return "", err
	}
	bs := []byte(s)
	for _, op := range ops {
		bs = op(bs)
	}
	return string(bs), nil
}

// DecipherN transforms the throttling 'n' parameter by evaluating the
// player's n-function in an embedded JS runtime.
func (d *Decipherer) DecipherN(n string) (string, error) {
	fn, err := d.getNFunction()
	if err != nil {
		return "", err
	}
	return evalJavascript(fn, n)
}

type DecipherOperation func([]byte) []byte

const (
	jsVarStr   = "[a-zA-Z_\\$][a-zA-Z_0-9]*"
	reverseStr = ":function\\(a\\)\\{" +
		"(?:return )?a\\.reverse\\(\\)" +
		"\\}"
	spliceStr = ":function\\(a,b\\)\\{" +
		"a\\.splice\\(0,b\\)" +
		"\\}"
	swapStr = ":function\\(a,b\\)\\{" +
		"var c=a\\[0\\];a\\[0\\]=a\\[b(?:%a\\.length)?\\];a\\[b(?:%a\\.length)?\\]=c(?:;return a)?" +
		"\\}"
)

var (
	nFunctionNameRegexps = []*regexp.Regexp{
		regexp.MustCompile(`\.get\("n"\)\)&&\(b=([a-zA-Z0-9$]{0,3})\[(\d+)\](.+)\|\|([a-zA-Z0-9]{0,3})`),
		regexp.MustCompile(`\.get\("n"\)\)\s*&&\s*\(b=([a-zA-Z0-9$]{1,})\[(\d+)\]\([a-zA-Z0-9$]{1,}\).+\|\|([a-zA-Z0-9$]{1,})`),
		regexp.MustCompile(`\.get\("n"\)\)\s*&&\s*\(b=([a-zA-Z0-9$]{1,})\([a-zA-Z0-9$]{1,}\)`),
	}
	actionsObjRegexp = regexp.MustCompile(fmt.Sprintf(
		"(?:var|let|const)\\s+(%s)=\\{((?:(?:%s%s|%s%s|%s%s),?\\n?)+)\\}\\s*;?",
		jsVarStr, jsVarStr, swapStr, jsVarStr, spliceStr, jsVarStr, reverseStr))
	reverseRegexp      = regexp.MustCompile(fmt.Sprintf("(?m)(?:^|,)(%s)%s", jsVarStr, reverseStr))
	spliceRegexp       = regexp.MustCompile(fmt.Sprintf("(?m)(?:^|,)(%s)%s", jsVarStr, spliceStr))
	swapRegexp         = regexp.MustCompile(fmt.Sprintf("(?m)(?:^|,)(%s)%s", jsVarStr, swapStr))
	actionsFuncRegexps = []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(
			"function(?:\\s+%s)?\\(a\\)\\{"+
				"a=a\\.split\\([^\\)]*\\);\\s*"+
				"((?:(?:a=)?%s(?:\\.%s|\\[[^\\]]+\\])\\(a,\\d+\\);?\\s*)+)"+
				"return a\\.join\\([^\\)]*\\)"+
				"\\}", jsVarStr, jsVarStr, jsVarStr)),
		regexp.MustCompile(fmt.Sprintf(
			"%s\\s*=\\s*function\\(a\\)\\{"+
				"a=a\\.split\\([^\\)]*\\);\\s*"+
				"((?:(?:a=)?%s(?:\\.%s|\\[[^\\]]+\\])\\(a,\\d+\\);?\\s*)+)"+
				"return a\\.join\\([^\\)]*\\)"+
				"\\}", jsVarStr, jsVarStr, jsVarStr)),
	}
)

func (d *Decipherer) parseDecipherOps() ([]DecipherOperation, error) {
	objResult := actionsObjRegexp.FindSubmatch(d.jsBody)
	funcBody := d.findActionsFuncBody()
	if len(objResult) < 3 || len(funcBody) == 0 {
		return nil, fmt.Errorf("error parsing signature tokens (#obj=%d, #func=%d)", len(objResult), len(funcBody))
	}

	obj := objResult[1]
	objBody := objResult[2]

	var reverseKey, spliceKey, swapKey string
	if result := reverseRegexp.FindSubmatch(objBody); len(result) > 1 {
		reverseKey = string(result[1])
	}
	if result := spliceRegexp.FindSubmatch(objBody); len(result) > 1 {
		spliceKey = string(result[1])
	}
	if result := swapRegexp.FindSubmatch(objBody); len(result) > 1 {
		swapKey = string(result[1])
	}

	regex, err := regexp.Compile(fmt.Sprintf(
		"(?:a=)?%s(?:\\.(%s|%s|%s)|\\[(?:\"(%s|%s|%s)\"|'(%s|%s|%s)')\\])\\(a,(\\d+)\\)",
		regexp.QuoteMeta(string(obj)),
		regexp.QuoteMeta(reverseKey), regexp.QuoteMeta(spliceKey), regexp.QuoteMeta(swapKey),
		regexp.QuoteMeta(reverseKey), regexp.QuoteMeta(spliceKey), regexp.QuoteMeta(swapKey),
		regexp.QuoteMeta(reverseKey), regexp.QuoteMeta(spliceKey), regexp.QuoteMeta(swapKey),
	))
	if err != nil {
		return nil, err
	}

	var ops []DecipherOperation
	for _, s := range regex.FindAllSubmatch(funcBody, -1) {
		if len(s) < 5 {
			continue
		}
		key := firstNonEmptySubmatch(s[1], s[2], s[3])
		arg, _ := strconv.Atoi(string(s[4]))
		switch key {
		case reverseKey:
			ops = append(ops, reverseFunc)
		case swapKey:
			ops = append(ops, newSwapFunc(arg))
		case spliceKey:
			ops = append(ops, newSpliceFunc(arg))
		}
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("error parsing signature operations (empty op list)")
	}
	return ops, nil
}

func (d *Decipherer) findActionsFuncBody() []byte {
	for _, re := range actionsFuncRegexps {
		if m := re.FindSubmatch(d.jsBody); len(m) > 1 {
			return m[1]
		}
	}
	return nil
}

func (d *Decipherer) getNFunction() (string, error) {
	for _, re := range nFunctionNameRegexps {
		nameResult := re.FindSubmatch(d.jsBody)
		if len(nameResult) == 0 {
			continue
		}

		switch len(nameResult) {
		case 5:
			if idx, err := strconv.Atoi(string(nameResult[2])); err == nil && idx == 0 {
				return d.extractFunction(string(nameResult[4]))
			}
			return d.extractFunction(string(nameResult[1]))
		case 4:
			if idx, err := strconv.Atoi(string(nameResult[2])); err == nil && idx == 0 {
				return d.extractFunction(string(nameResult[3]))
			}
			return d.extractFunction(string(nameResult[1]))
		default:
			return d.extractFunction(string(nameResult[1]))
		}
	}
	return "", errors.New("unable to extract n-function name")
}

func (d *Decipherer) extractFunction(name string) (string, error) {
	name = strings.TrimSpace(name)
	defPatterns := [][]byte{
		[]byte(name + "=function("),
		[]byte(name + " = function("),
		[]byte("function " + name + "("),
	}
	start := -1
	for _, def := range defPatterns {
		start = bytes.Index(d.jsBody, def)
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("unable to extract n-function body")
	}

	pos := start + bytes.IndexByte(d.jsBody[start:], '{') + 1
	var strChar byte
	for brackets := 1; brackets > 0; pos++ {
		if pos >= len(d.jsBody) {
			return "", fmt.Errorf("unterminated n-function body")
		}
		b := d.jsBody[pos]
		switch b {
		case '{':
			if strChar == 0 {
				brackets++
			}
		case '}':
			if strChar == 0 {
				brackets--
			}
		case '`', '"', '\'':
			if pos > 1 && d.jsBody[pos-1] == '\\' && d.jsBody[pos-2] != '\\' {
				continue
			}
			if strChar == 0 {
				strChar = b
			} else if strChar == b {
				strChar = 0
			}
		}
	}
	return string(d.jsBody[start:pos]), nil
}

func firstNonEmptySubmatch(groups ...[]byte) string {
	for _, g := range groups {
		if len(g) > 0 {
			return string(g)
		}
	}
	return ""
}

func evalJavascript(jsFunction, arg string) (string, error) {
	const fnName = "clipperNsigFunction"
	vm := goja.New()
	if _, err := vm.RunString(fnName + "=" + jsFunction); err != nil {
		return "", err
	}
	var output func(string) string
	if err := vm.ExportTo(vm.Get(fnName), &output); err != nil {
		return "", err
	}
	return output(arg), nil
}
