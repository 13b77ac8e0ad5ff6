package anatomy

// sampleDatabase is the built-in demo set. SampleDatabase hands out copies so callers can edit freely.
var sampleDatabase = buildSampleDatabase()

// SampleDatabase returns the demo set: 15 bones and 19 muscles spread over the seven muscle layers.
func SampleDatabase() *Database {
	db, err := sampleDatabase.Clone()
	if err != nil {
		// copier only fails on mismatched types.
		panic(err)
	}
	return db
}

type sampleEntry struct {
	layer       Layer
	name        string
	description string
}

var sampleBones = []sampleEntry{
	{Bone, "Skull", "The skull is the bony structure that forms the head, protecting the brain and supporting the face."},
	{Bone, "Mandible", "The mandible is the lower jaw bone, the largest and strongest bone of the face."},
	{Bone, "Cervical Vertebrae", "Seven vertebrae in the neck region, designated C1 to C7."},
	{Bone, "Thoracic Vertebrae", "Twelve vertebrae in the chest region, designated T1 to T12."},
	{Bone, "Lumbar Vertebrae", "Five vertebrae in the lower back, designated L1 to L5."},
	{Bone, "Clavicle", "The collarbone connects the shoulder blade to the sternum."},
	{Bone, "Scapula", "The shoulder blade is a large triangular bone in the upper back."},
	{Bone, "Humerus", "The bone of the upper arm, extending from shoulder to elbow."},
	{Bone, "Radius", "One of two bones of the forearm, on the thumb side."},
	{Bone, "Ulna", "One of two bones of the forearm, on the pinky side."},
	{Bone, "Pelvis", "The pelvic girdle consists of the hip bones and sacrum."},
	{Bone, "Femur", "The thighbone is the longest and strongest bone in the body."},
	{Bone, "Patella", "The kneecap protects the knee joint."},
	{Bone, "Tibia", "The shinbone is the larger of the two leg bones."},
	{Bone, "Fibula", "The smaller bone of the lower leg, parallel to the tibia."},
}

var sampleMuscles = []sampleEntry{
	{Muscle1, "Trapezius", "Large muscle extending over the back of the neck and shoulders."},
	{Muscle1, "Deltoid", "Shoulder muscle responsible for arm abduction."},
	{Muscle1, "Pectoralis Major", "Large chest muscle responsible for arm movements."},
	{Muscle1, "Latissimus Dorsi", "Broad muscle of the back that pulls the arm down and back."},
	{Muscle2, "Infraspinatus", "Rotator cuff muscle that externally rotates the arm."},
	{Muscle2, "Teres Minor", "Small rotator cuff muscle that assists in external rotation."},
	{Muscle2, "Rhomboid Major", "Retracts the scapula toward the spine."},
	{Muscle3, "Serratus Anterior", "Muscle that protracts the scapula and helps in arm elevation."},
	{Muscle3, "Subscapularis", "Rotator cuff muscle that internally rotates the arm."},
	{Muscle4, "Biceps Brachii", "Two-headed muscle of the upper arm that flexes the elbow."},
	{Muscle4, "Triceps Brachii", "Three-headed muscle that extends the elbow."},
	{Muscle4, "Brachialis", "Muscle beneath the biceps that flexes the elbow."},
	{Muscle5, "Quadriceps Femoris", "Four-headed muscle group that extends the knee."},
	{Muscle5, "Hamstrings", "Group of three muscles that flex the knee and extend the hip."},
	{Muscle5, "Gastrocnemius", "Calf muscle that plantar flexes the foot."},
	{Muscle6, "Soleus", "Muscle beneath the gastrocnemius that plantar flexes the foot."},
	{Muscle6, "Tibialis Anterior", "Muscle that dorsiflexes and inverts the foot."},
	{Muscle7, "Iliopsoas", "Deep hip flexor composed of psoas major and iliacus."},
	{Muscle7, "Piriformis", "Deep muscle that externally rotates the hip."},
}

const (
	sampleTopY       = 8
	sampleBoneStep   = 1.1
	sampleColumnGap  = 1.4
	sampleLayerDepth = 0.5
)

// buildSampleDatabase lays bones out as a vertical column at z=0 and each muscle layer as a
// row in front of it; deeper layers sit closer to the skeleton.
func buildSampleDatabase() *Database {
	db := &Database{}
	for i, e := range sampleBones {
		db.Parts = append(db.Parts, PartData{
			ID:          Slug(e.name),
			Name:        e.name,
			Description: e.description,
			Type:        TypeBone,
			Layer:       Bone,
			Shape:       "cylinder",
			Position:    [3]float32{0, sampleTopY - float32(i)*sampleBoneStep, 0},
			Size:        [3]float32{0.6, 1, 0.6},
		})
	}
	perLayer := map[Layer]int{}
	for _, e := range sampleMuscles {
		perLayer[e.layer]++
	}
	seen := map[Layer]int{}
	for _, e := range sampleMuscles {
		col := seen[e.layer]
		seen[e.layer]++
		x := (float32(col) - float32(perLayer[e.layer]-1)/2) * sampleColumnGap
		db.Parts = append(db.Parts, PartData{
			ID:          Slug(e.name),
			Name:        e.name,
			Description: e.description,
			Type:        TypeMuscle,
			Layer:       e.layer,
			Shape:       "cube",
			Position:    [3]float32{x, sampleTopY - float32(e.layer)*sampleBoneStep*1.8, float32(LayerCount-int(e.layer)) * sampleLayerDepth},
			Size:        [3]float32{1.2, 1, 0.4},
		})
	}
	return db
}
