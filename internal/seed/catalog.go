// Package seed loads the sample catalog and generates a week of
// conflict-free showtimes for it.
package seed

import "github.com/ktanaka99/movie-reservation/internal/model"

// Movies is the sample catalog: recent Japanese releases picked for an
// older audience.
func Movies() []model.Movie {
	return []model.Movie{
		{
			Title:       "キングダム 大将軍の帰還",
			Description: "中国春秋戦国時代を舞台にした人気漫画の実写映画第4作。大将軍・王翦との決戦に挑む信と政の活躍を描く。迫力のアクションと感動のドラマ。",
			Duration:    134,
			Genre:       "アクション/歴史",
			ReleaseYear: 2024,
			Director:    "佐藤信介",
			ImageURL:    "/images/posters/kingdam.jpg",
		},
		{
			Title:       "君たちはどう生きるか",
			Description: "宮崎駿監督による感動のアニメーション。少年の成長と戦時下の日本を描いた名作。美しい映像と深いメッセージが心に響きます。",
			Duration:    124,
			Genre:       "アニメーション",
			ReleaseYear: 2023,
			Director:    "宮崎 駿",
			ImageURL:    "/images/posters/kimitachi.jpg",
		},
		{
			Title:       "怪物",
			Description: "コロナ禍の小学校を舞台に、母と子、教師それぞれの視点から真実を描く是枝裕和監督の傑作。カンヌ国際映画祭脚本賞受賞作品。",
			Duration:    126,
			Genre:       "ドラマ/ミステリー",
			ReleaseYear: 2023,
			Director:    "是枝 裕和",
			ImageURL:    "/images/posters/kaibutsu.jpg",
		},
		{
			Title:       "ゴジラ-1.0",
			Description: "戦後間もない日本を襲う巨大生物の恐怖。山崎貴監督によるゴジラシリーズ最新作。オスカー受賞の話題作をぜひ大スクリーンで。",
			Duration:    124,
			Genre:       "アクション/SF",
			ReleaseYear: 2023,
			Director:    "山崎 貴",
			ImageURL:    "/images/posters/godzilla.jpg",
		},
		{
			Title:       "四月になれば彼女は",
			Description: "定年退職した男性が昔の恋人を思い出し、再会を試みる感動ドラマ。人生の後半に訪れる静かな愛の物語。シニア世代の共感を呼ぶヒューマンドラマ。",
			Duration:    116,
			Genre:       "ドラマ/ロマンス",
			ReleaseYear: 2024,
			Director:    "吉田 康弘",
			ImageURL:    "/images/posters/april.jpg",
		},
		{
			Title:       "名探偵コナン 100万ドルの五稜星",
			Description: "人気アニメシリーズの27作目。函館を舞台に、100万ドルの価値がある「五稜星」をめぐるミステリー。老若男女で楽しめる国民的作品。",
			Duration:    110,
			Genre:       "アニメ/ミステリー",
			ReleaseYear: 2024,
			Director:    "満仲勧",
			ImageURL:    "/images/posters/conan.jpg",
		},
		{
			Title:       "老後の居場所",
			Description: "高齢化社会の課題に向き合う夫婦の実話をもとにした感動作。地域コミュニティの大切さと、人生の最終章を自分らしく生きる勇気を描く話題作。",
			Duration:    120,
			Genre:       "ドラマ",
			ReleaseYear: 2024,
			Director:    "黒木 瞳",
			ImageURL:    "/images/posters/roogo.jpg",
		},
		{
			Title:       "デッドプール＆ウルヴァリン",
			Description: "マーベル・ユニバースの異色ヒーロー2人が初共演。過激なユーモアと派手なアクションの融合。お孫さんと一緒に楽しめる話題作。",
			Duration:    127,
			Genre:       "アクション/コメディ",
			ReleaseYear: 2024,
			Director:    "ショーン・レヴィ",
			ImageURL:    "/images/posters/deadpool.jpg",
		},
	}
}

// Theaters returns the three screening rooms. Every room uses the A–H
// row grid; column counts size the rooms near their historic capacities
// (120, 80 and 150 seats).
func Theaters() []model.Theater {
	return []model.Theater{
		{Name: "シアター1", Rows: 8, Cols: 15},
		{Name: "シアター2", Rows: 8, Cols: 10},
		{Name: "シアター3", Rows: 8, Cols: 19},
	}
}
