package locale

// entry is one key in both supported languages.
type entry struct {
	en, zh string
}

var table = map[string]entry{
	// UI labels
	"bone_layer":   {"Bone Layer", "骨骼层"},
	"muscle_layer": {"Muscle Layer", "肌肉层"},
	"search":       {"Search", "搜索"},
	"clear":        {"Clear", "清除"},
	"show_all":     {"Show All", "显示全部"},
	"hide_all":     {"Hide All", "隐藏全部"},
	"no_results":   {"No results found", "未找到结果"},
	"name":         {"Name", "名称"},
	"description":  {"Description", "说明"},
	"type":         {"Type", "类型"},
	"layer":        {"Layer", "层"},
	"results":      {"Results", "结果"},
	"selected":     {"Selected", "已选择"},

	// part types
	"bone":   {"Bone", "骨骼"},
	"muscle": {"Muscle", "肌肉"},

	// layers
	"skeletal_system":     {"Skeletal System", "骨骼系统"},
	"superficial_muscles": {"Superficial Muscles (Layer 1)", "表层肌肉（第1层）"},
	"muscle_layer_2":      {"Muscle Layer 2", "肌肉第2层"},
	"muscle_layer_3":      {"Muscle Layer 3", "肌肉第3层"},
	"muscle_layer_4":      {"Muscle Layer 4", "肌肉第4层"},
	"muscle_layer_5":      {"Muscle Layer 5", "肌肉第5层"},
	"muscle_layer_6":      {"Muscle Layer 6", "肌肉第6层"},
	"deep_muscles":        {"Deep Muscles (Layer 7)", "深层肌肉（第7层）"},

	// bones
	"skull":              {"Skull", "颅骨"},
	"mandible":           {"Mandible", "下颌骨"},
	"cervical_vertebrae": {"Cervical Vertebrae", "颈椎"},
	"thoracic_vertebrae": {"Thoracic Vertebrae", "胸椎"},
	"lumbar_vertebrae":   {"Lumbar Vertebrae", "腰椎"},
	"clavicle":           {"Clavicle", "锁骨"},
	"scapula":            {"Scapula", "肩胛骨"},
	"humerus":            {"Humerus", "肱骨"},
	"radius":             {"Radius", "桡骨"},
	"ulna":               {"Ulna", "尺骨"},
	"pelvis":             {"Pelvis", "骨盆"},
	"femur":              {"Femur", "股骨"},
	"patella":            {"Patella", "髌骨"},
	"tibia":              {"Tibia", "胫骨"},
	"fibula":             {"Fibula", "腓骨"},

	// muscles
	"trapezius":          {"Trapezius", "斜方肌"},
	"deltoid":            {"Deltoid", "三角肌"},
	"pectoralis_major":   {"Pectoralis Major", "胸大肌"},
	"latissimus_dorsi":   {"Latissimus Dorsi", "背阔肌"},
	"biceps_brachii":     {"Biceps Brachii", "肱二头肌"},
	"triceps_brachii":    {"Triceps Brachii", "肱三头肌"},
	"quadriceps_femoris": {"Quadriceps Femoris", "股四头肌"},
	"hamstrings":         {"Hamstrings", "腘绳肌"},
	"gastrocnemius":      {"Gastrocnemius", "腓肠肌"},

	// instructions
	"rotate_instruction": {"Drag to rotate", "拖动旋转"},
	"zoom_instruction":   {"Pinch to zoom", "捏合缩放"},
	"pan_instruction":    {"Two fingers to pan", "双指平移"},
	"select_instruction": {"Tap to select", "点击选择"},
}
