package i18n

// Messages 화면과 API 응답에 노출되는 언어별 문구 모음입니다.
type Messages struct {
	LangText               string `json:"langText"`
	HeaderWhatsApp         string `json:"headerWa"`
	StoreTitle             string `json:"storeTitle"`
	StoreSubtitle          string `json:"storeSubtitle"`
	LoadingText            string `json:"loadingText"`
	SearchPlaceholder      string `json:"searchPlaceholder"`
	CategoryLabel          string `json:"categoryLabel"`
	AllCategories          string `json:"allCategories"`
	SortLabel              string `json:"sortLabel"`
	SortDefault            string `json:"sortDefault"`
	SortNameAsc            string `json:"sortNameAsc"`
	SortNameDesc           string `json:"sortNameDesc"`
	SortPriceAsc           string `json:"sortPriceAsc"`
	SortPriceDesc          string `json:"sortPriceDesc"`
	SortCategoryAsc        string `json:"sortCategoryAsc"`
	SortCategoryDesc       string `json:"sortCategoryDesc"`
	SortArabicAsc          string `json:"sortArabicAsc"`
	SortArabicDesc         string `json:"sortArabicDesc"`
	FooterText             string `json:"footerText"`
	CartTitle              string `json:"cartTitle"`
	CartEmpty              string `json:"cartEmpty"`
	TotalLabel             string `json:"totalLabel"`
	CheckoutBtn            string `json:"checkoutBtn"`
	AddToCart              string `json:"addToCart"`
	Added                  string `json:"added"`
	OutOfStock             string `json:"oos"`
	InStock                string `json:"inStock"`
	Copy                   string `json:"copy"`
	Copied                 string `json:"copied"`
	NoPreview              string `json:"noPreview"`
	RetailPrice            string `json:"retailPrice"`
	BulkSaving             string `json:"bulkSaving"`
	AppliedRetail          string `json:"appliedRetail"`
	AppliedBulk            string `json:"appliedBulk"`
	ViewDocument           string `json:"viewDoc"`
	SelectColor            string `json:"selectColor"`
	NoDescription          string `json:"noDesc"`
	ConfirmClearTitle      string `json:"confirmClearTitle"`
	ConfirmClearMsg        string `json:"confirmClearMsg"`
	ClearAll               string `json:"clearAll"`
	KeepItems              string `json:"keepItems"`
	CartClearedTitle       string `json:"cartClearedTitle"`
	CartClearedMsg         string `json:"cartClearedMsg"`
	CartAlreadyEmptyMsg    string `json:"cartAlreadyEmptyMsg"`
	Done                   string `json:"done"`
	OK                     string `json:"ok"`
	CartEmptyCheckoutTitle string `json:"cartEmptyCheckoutTitle"`
	CartEmptyCheckoutMsg   string `json:"cartEmptyCheckoutMsg"`
	WhatsAppOrderHeader    string `json:"waOrderHeader"`
	WhatsAppOrderTotal     string `json:"waOrderTotal"`
	Qty                    string `json:"qty"`
	PCS                    string `json:"pcs"`
	Color                  string `json:"color"`
	DefaultColor           string `json:"defaultColor"`
	CollectionLabel        string `json:"collectionLabel"`
	DimensionsLabel        string `json:"dimensionsLabel"`
	TargetMarketLabel      string `json:"targetMarketLabel"`
	DescriptionLabel       string `json:"descriptionLabel"`
}

var english = Messages{
	LangText:               "العربية",
	HeaderWhatsApp:         "Order via WhatsApp",
	StoreTitle:             "Creative Rarities Store",
	StoreSubtitle:          "Discover unique and premium products.",
	LoadingText:            "Loading Catalog...",
	SearchPlaceholder:      "Smart search: name, category, price, item number... ",
	CategoryLabel:          "Category:",
	AllCategories:          "All Categories",
	SortLabel:              "Sort by:",
	SortDefault:            "Default",
	SortNameAsc:            "Name (A-Z)",
	SortNameDesc:           "Name (Z-A)",
	SortPriceAsc:           "Price (Low-High)",
	SortPriceDesc:          "Price (High-Low)",
	SortCategoryAsc:        "Category (A-Z)",
	SortCategoryDesc:       "Category (Z-A)",
	SortArabicAsc:          "Arabic Name (أ-ي)",
	SortArabicDesc:         "Arabic Name (ي-أ)",
	FooterText:             "© 2026 Creative Rarities. Powered by 3omar.hs",
	CartTitle:              "Your Cart",
	CartEmpty:              "Your cart is empty.",
	TotalLabel:             "Total:",
	CheckoutBtn:            "Checkout via WhatsApp",
	AddToCart:              "Add to Cart",
	Added:                  "Added!",
	OutOfStock:             "Out of Stock",
	InStock:                "In Stock",
	Copy:                   "Copy",
	Copied:                 "Copied!",
	NoPreview:              "No Preview Available",
	RetailPrice:            "Retail Price (< 25 QTY):",
	BulkSaving:             "Wholesale Price (>= 25 QTY):",
	AppliedRetail:          "(Applied Retail Price for < 25 qty)",
	AppliedBulk:            "(Applied Wholesale Price for >= 25 qty)",
	ViewDocument:           "View Document",
	SelectColor:            "Available Colors:",
	NoDescription:          "No additional description available.",
	ConfirmClearTitle:      "Empty Cart?",
	ConfirmClearMsg:        "Are you sure you want to empty your cart? This will erase all selected items.",
	ClearAll:               "Clear All",
	KeepItems:              "Keep Items",
	CartClearedTitle:       "Cart Cleared",
	CartClearedMsg:         "All items have been removed from your cart successfully.",
	CartAlreadyEmptyMsg:    "Your cart is already empty.",
	Done:                   "Done",
	OK:                     "Ok",
	CartEmptyCheckoutTitle: "Cart is Empty",
	CartEmptyCheckoutMsg:   "Please add some items to your cart before proceeding to checkout.",
	WhatsAppOrderHeader:    "*Creative Rarities Store - New Order*",
	WhatsAppOrderTotal:     "Order Total:",
	Qty:                    "Qty",
	PCS:                    "PCS",
	Color:                  "Color",
	DefaultColor:           "Default",
	CollectionLabel:        "Collection:",
	DimensionsLabel:        "Dimensions:",
	TargetMarketLabel:      "Target Market:",
	DescriptionLabel:       "Description:",
}

var arabic = Messages{
	LangText:               "English",
	HeaderWhatsApp:         "اطلب عبر واتساب",
	StoreTitle:             "متجر نوادر إبداعية",
	StoreSubtitle:          "اكتشف منتجات فريدة وفاخرة.",
	LoadingText:            "جاري تحميل الكتالوج...",
	SearchPlaceholder:      "بحث ذكي: الاسم بالتصنيف بالسعر برقم القطعة...",
	CategoryLabel:          "التصنيف:",
	AllCategories:          "جميع التصنيفات",
	SortLabel:              "ترتيب حسب:",
	SortDefault:            "الافتراضي",
	SortNameAsc:            "الاسم (A-Z)",
	SortNameDesc:           "الاسم (Z-A)",
	SortPriceAsc:           "السعر (أقل-أعلى)",
	SortPriceDesc:          "السعر (أعلى-أقل)",
	SortCategoryAsc:        "التصنيف (A-Z)",
	SortCategoryDesc:       "التصنيف (Z-A)",
	SortArabicAsc:          "الاسم العربي (أ-ي)",
	SortArabicDesc:         "الاسم العربي (ي-أ)",
	FooterText:             "© 2026 Creative Rarities. بدعم من 3omar.hs",
	CartTitle:              "سلة التسوق",
	CartEmpty:              "سلة التسوق فارغة.",
	TotalLabel:             "المجموع:",
	CheckoutBtn:            "إتمام الطلب عبر واتساب",
	AddToCart:              "أضف للسلة",
	Added:                  "تمت الإضافة!",
	OutOfStock:             "نفدت الكمية",
	InStock:                "متوفر",
	Copy:                   "نسخ",
	Copied:                 "تم النسخ!",
	NoPreview:              "لا يوجد معاينة",
	RetailPrice:            "سعر المفرق لأقل من 25 قطعة:",
	BulkSaving:             "سعر الجملة لـ 25 قطعة فأكثر:",
	AppliedRetail:          "(تم تطبيق سعر المفرق لأقل من 25 قطعة)",
	AppliedBulk:            "(تم تطبيق سعر الجملة لـ 25 قطعة فأكثر)",
	ViewDocument:           "عرض الملف",
	SelectColor:            "الألوان المتاحة:",
	NoDescription:          "لا يوجد وصف إضافي متاح.",
	ConfirmClearTitle:      "تفريغ السلة؟",
	ConfirmClearMsg:        "هل أنت متأكد أنك تريد تفريغ سلة التسوق؟ سيتم مسح جميع العناصر المختارة.",
	ClearAll:               "مسح الكل",
	KeepItems:              "الإبقاء على العناصر",
	CartClearedTitle:       "تم تفريغ السلة",
	CartClearedMsg:         "تمت إزالة جميع العناصر من سلتك بنجاح.",
	CartAlreadyEmptyMsg:    "سلة التسوق فارغة بالفعل.",
	Done:                   "تم",
	OK:                     "حسناً",
	CartEmptyCheckoutTitle: "السلة فارغة",
	CartEmptyCheckoutMsg:   "يرجى إضافة بعض العناصر إلى سلتك قبل المتابعة لإتمام الطلب.",
	WhatsAppOrderHeader:    "*Creative Rarities Store - طلب جديد*",
	WhatsAppOrderTotal:     "مجموع الطلب:",
	Qty:                    "الكمية",
	PCS:                    "قطعة",
	Color:                  "اللون",
	DefaultColor:           "افتراضي",
	CollectionLabel:        "المجموعة:",
	DimensionsLabel:        "الأبعاد:",
	TargetMarketLabel:      "الجمهور المستهدف:",
	DescriptionLabel:       "الوصف:",
}
