package extract

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/bungo"
)

// Pattern category names, in matching order.
const (
	CategoryPrefecture   = "都道府県"
	CategoryMunicipality = "市区町村"
	CategoryCounty       = "郡"
	CategoryGazetteer    = "有名地名"
)

// PatternCategory is one family of lexical place-name rules.
type PatternCategory struct {
	Name       string
	Pattern    *regexp.Regexp
	Confidence float64
}

// Method returns the extraction method tag for mentions from this category.
func (c PatternCategory) Method() string {
	return bungo.MethodPatternPrefix + c.Name
}

var prefectureStems = []string{
	"北海", "青森", "岩手", "宮城", "秋田", "山形", "福島",
	"茨城", "栃木", "群馬", "埼玉", "千葉", "東京", "神奈川",
	"新潟", "富山", "石川", "福井", "山梨", "長野", "岐阜", "静岡", "愛知",
	"三重", "滋賀", "京都", "大阪", "兵庫", "奈良", "和歌山",
	"鳥取", "島根", "岡山", "広島", "山口",
	"徳島", "香川", "愛媛", "高知",
	"福岡", "佐賀", "長崎", "熊本", "大分", "宮崎", "鹿児島", "沖縄",
}

// gazetteer lists well-known places that carry no administrative suffix.
var gazetteer = []string{
	// Tokyo
	"東京", "銀座", "新宿", "渋谷", "上野", "浅草", "品川", "池袋", "新橋", "有楽町", "丸の内",
	"表参道", "原宿", "恵比寿", "六本木", "赤坂", "青山", "麻布", "目黒", "世田谷",
	"江戸", "本郷", "神田", "日本橋", "築地", "月島", "両国", "浅草橋", "秋葉原",

	// Kanto
	"横浜", "川崎", "千葉", "埼玉", "大宮", "浦和", "船橋", "柏", "所沢", "川越",
	"鎌倉", "湘南", "箱根", "熱海", "軽井沢", "日光", "那須", "草津", "伊香保",

	// Kansai
	"京都", "大阪", "神戸", "奈良", "和歌山", "滋賀", "嵐山", "祇園",
	"清水", "金閣寺", "銀閣寺", "伏見", "宇治", "平安京", "難波", "梅田", "心斎橋",

	// Chubu
	"名古屋", "金沢", "富山", "新潟", "長野", "松本", "諏訪", "上高地", "立山",

	// Tohoku
	"仙台", "青森", "盛岡", "秋田", "山形", "福島", "会津", "松島", "津軽",

	// Hokkaido
	"北海道", "札幌", "函館", "小樽", "旭川", "釧路", "帯広", "北見",

	// Chugoku and Shikoku
	"四国", "広島", "岡山", "山口", "鳥取", "島根", "高松", "松山", "道後", "高知", "徳島",

	// Kyushu and Okinawa
	"九州", "福岡", "博多", "北九州", "佐賀", "長崎", "熊本", "大分", "宮崎", "鹿児島", "沖縄", "那覇",

	// Historical provinces
	"駿河", "甲斐", "信濃", "越後", "陸奥", "出羽", "薩摩", "土佐",
	"伊豆", "伊勢", "山城", "大和", "河内", "和泉", "摂津", "近江", "美濃", "尾張",

	// Abroad
	"パリ", "ロンドン", "ベルリン", "ローマ", "ウィーン", "モスクワ", "ペテルブルク",
	"ニューヨーク", "シカゴ", "サンフランシスコ", "ロサンゼルス", "シラクス",
	"上海", "北京", "香港", "ソウル", "バンコク", "マニラ",

	// Mountains, lakes, seas and rivers
	"本州", "富士山", "阿蘇山", "霧島", "筑波山", "比叡山", "高野山",
	"琵琶湖", "中禅寺湖", "芦ノ湖", "十和田湖",
	"瀬戸内海", "日本海", "太平洋", "東京湾", "大阪湾", "駿河湾",
	"利根川", "信濃川", "石狩川", "筑後川", "吉野川",
}

// defaultCategories is built once; the order is load-bearing because the
// first category to match a surface string names its extraction method.
var defaultCategories = []PatternCategory{
	{
		Name:       CategoryPrefecture,
		Pattern:    regexp.MustCompile(`(?:` + strings.Join(prefectureStems, "|") + `)[都道府県]`),
		Confidence: 0.9,
	},
	{
		Name:       CategoryMunicipality,
		Pattern:    regexp.MustCompile(`[一-龯]{2,8}[市区町村]`),
		Confidence: 0.8,
	},
	{
		Name:       CategoryCounty,
		Pattern:    regexp.MustCompile(`[一-龯]{2,6}郡`),
		Confidence: 0.7,
	},
	{
		Name:       CategoryGazetteer,
		Pattern:    alternation(gazetteer),
		Confidence: 0.85,
	},
}

// DefaultCategories returns the built-in pattern categories in matching order.
func DefaultCategories() []PatternCategory {
	return slices.Clone(defaultCategories)
}

// Gazetteer returns the curated place names matched by the gazetteer category.
func Gazetteer() []string {
	return slices.Clone(gazetteer)
}

// alternation compiles names into one regexp. Longer names are tried first
// so that 浅草橋 is not cut short to 浅草.
func alternation(names []string) *regexp.Regexp {
	sorted := slices.Clone(names)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})

	quoted := make([]string, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))
	for _, name := range sorted {
		if seen[name] {
			continue
		}
		seen[name] = true
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	return regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)`)
}
