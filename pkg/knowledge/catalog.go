package knowledge

import (
	"github.com/vagledaren/vagledaren/pkg/types"
)

// Catalog categories. Category names stay in Swedish since the whole
// knowledge base is written for Swedish-speaking users.
const (
	CATEGORY_GRUNDLAGGANDE  = "grundlaggande_ai"
	CATEGORY_MODELLER       = "ai_modeller"
	CATEGORY_IMPLEMENTATION = "implementation"
	CATEGORY_AFFAR          = "affars_ai"
	CATEGORY_TEKNISK        = "teknisk"
	CATEGORY_FRAMTID        = "framtid"
	CATEGORY_SAKERHET       = "sakerhet"
	CATEGORY_UNIVERSITET    = "universitet"
)

// Catalog is the in-memory AI expertise knowledge base. Documents are
// curated by hand and loaded once at startup, retrieval never touches
// the database.
func Catalog() []types.KnowledgeDocument {
	var docs []types.KnowledgeDocument
	docs = append(docs, grundlaggandeDocs()...)
	docs = append(docs, modellerDocs()...)
	docs = append(docs, implementationDocs()...)
	docs = append(docs, affarsDocs()...)
	docs = append(docs, tekniskaDocs()...)
	docs = append(docs, framtidDocs()...)
	docs = append(docs, sakerhetDocs()...)
	docs = append(docs, universitetDocs()...)
	return docs
}

func grundlaggandeDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "Machine Learning Fundamentals",
			Category:        CATEGORY_GRUNDLAGGANDE,
			Content:         `Machine Learning (ML) är en gren av AI där system lär sig från data utan att vara explicit programmerade. Det finns tre huvudtyper: Supervised Learning (med labels), Unsupervised Learning (utan labels) och Reinforcement Learning (belöningsbaserat). För att lyckas med ML krävs kvalitetsdata, rätt problemformulering och kontinuerlig evaluation. Som coach hjälper jag dig förstå vilken ML-approach som passar ditt specifika problem och hur du kan bygga kompetens steg för steg.`,
			Keywords:        []string{"machine learning", "supervised", "unsupervised", "reinforcement", "data"},
			CoachingContext: "Hjälper användare förstå ML-grunder och välja rätt approach för sina projekt",
		},
		{
			Title:           "Deep Learning Essentials",
			Category:        CATEGORY_GRUNDLAGGANDE,
			Content:         `Deep Learning använder neurala nätverk med flera lager för att lösa komplexa problem. Det är särskilt kraftfullt för bild-, text- och talbehandling. Vanliga arkitekturer inkluderar CNN (bilder), RNN/LSTM (sekvenser) och Transformers (språk). Deep Learning kräver stora datamängder och beräkningsresurser, men ger ofta överlägsna resultat. Som din coach guidar jag dig genom när deep learning är rätt val och hur du kan börja med ramverk som TensorFlow eller PyTorch.`,
			Keywords:        []string{"deep learning", "neural networks", "CNN", "RNN", "LSTM", "transformers"},
			CoachingContext: "Hjälper bedöma när deep learning är lämpligt och planera implementering",
		},
		{
			Title:           "Natural Language Processing (NLP)",
			Category:        CATEGORY_GRUNDLAGGANDE,
			Content:         `NLP fokuserar på att få datorer att förstå och generera mänskligt språk. Moderna NLP bygger på Transformers och stora språkmodeller som GPT och BERT. Vanliga tillämpningar inkluderar textanalys, översättning, chatbots och dokumentsammanfattning. För att lyckas med NLP behöver du förstå tokenisering, embeddings och fine-tuning. Som coach hjälper jag dig identifiera NLP-möjligheter i din verksamhet och planera praktisk implementering.`,
			Keywords:        []string{"NLP", "natural language", "transformers", "GPT", "BERT", "tokenisering"},
			CoachingContext: "Guidar genom NLP-projekt från idé till implementation",
		},
		{
			Title:           "Computer Vision Basics",
			Category:        CATEGORY_GRUNDLAGGANDE,
			Content:         `Computer Vision låter datorer 'se' och förstå bilder och video. Huvudtekniker inkluderar bildigenkänning, objektdetektering, segmentering och generativ AI för bilder. Moderna system använder Convolutional Neural Networks (CNN) och Vision Transformers. Tillämpningar sträcker sig från medicinsk bildanalys till autonom körning. Som coach hjälper jag dig utvärdera computer vision-möjligheter och planera pilotprojekt som skapar verkligt värde.`,
			Keywords:        []string{"computer vision", "CNN", "bildigenkänning", "objektdetektering", "medicinsk bildanalys"},
			CoachingContext: "Stöttar identifiering och planning av computer vision-tillämpningar",
		},
	}
}

func modellerDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "Transformer Architecture Deep Dive",
			Category:        CATEGORY_MODELLER,
			Content:         `Transformers revolutionerade AI genom attention-mekanismen som låter modeller fokusera på relevanta delar av input. Nyckelkomponenter är self-attention, multi-head attention och positionell encoding. Transformers är grunden för moderna språkmodeller som GPT, BERT och T5. De har också visat framgång inom computer vision (Vision Transformers). Som coach hjälper jag dig förstå när och hur du kan använda Transformers för dina specifika behov.`,
			Keywords:        []string{"transformers", "attention", "self-attention", "GPT", "BERT", "vision transformers"},
			CoachingContext: "Förklarar Transformer-teknologi och dess praktiska tillämpningar",
		},
		{
			Title:           "Large Language Models (LLMs)",
			Category:        CATEGORY_MODELLER,
			Content:         `LLMs som GPT-4, Claude och Llama är tränade på enorma textmängder och kan generera, analysera och resonera kring text. De möjliggör nya tillämpningar som intelligenta chatbots, kodgenerering och innehållsskapande. Viktiga överväganden inkluderar prompt engineering, fine-tuning, RAG (Retrieval-Augmented Generation) och hallucination management. Som coach guidar jag dig genom LLM-strategier som passar din organisation och budget.`,
			Keywords:        []string{"LLM", "GPT", "Claude", "Llama", "prompt engineering", "fine-tuning", "RAG"},
			CoachingContext: "Strategisk rådgivning för LLM-adoption och implementation",
		},
		{
			Title:           "Generative AI Models",
			Category:        CATEGORY_MODELLER,
			Content:         `Generativ AI skapar nytt innehåll - text, bilder, kod, musik och mer. Huvudkategorier inkluderar språkmodeller (GPT), bildgeneratorer (DALL-E, Midjourney, Stable Diffusion), kodgeneratorer (GitHub Copilot) och multimodala system. Generativ AI transformerar kreativa processer och produktivitet. Som coach hjälper jag dig identifiera värdefulla use cases och implementera generativ AI på ett ansvarsfullt sätt.`,
			Keywords:        []string{"generativ AI", "DALL-E", "Midjourney", "Stable Diffusion", "GitHub Copilot", "multimodal"},
			CoachingContext: "Guidar implementation av generativ AI för produktivitet och kreativitet",
		},
	}
}

func implementationDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "MLOps Best Practices",
			Category:        CATEGORY_IMPLEMENTATION,
			Content:         `MLOps är DevOps för machine learning - det standardiserar ML-utveckling från experiment till production. Nyckelelement inkluderar versionshantring av data och modeller, automatiserad training/testing, kontinuerlig monitoring och CI/CD pipelines. Populära verktyg är MLflow, Kubeflow, DVC och Weights & Biases. Framgångsrik MLOps kräver samarbete mellan data scientists och DevOps-team. Som coach hjälper jag dig bygga MLOps-kapacitet och välja rätt verktyg.`,
			Keywords:        []string{"MLOps", "CI/CD", "MLflow", "Kubeflow", "DVC", "model monitoring"},
			CoachingContext: "Stöttar MLOps-transformation och verktygsval",
		},
		{
			Title:           "Data Quality for AI Success",
			Category:        CATEGORY_IMPLEMENTATION,
			Content:         `Kvalitetsdata är grunden för framgångsrik AI. Vanliga utmaningar inkluderar saknad data, bias, inkonsistens och datadrift. Best practices inkluderar dataprofiling, validation pipelines, bias testing och kontinuerlig monitoring. Data governance säkerställer ansvarsfull AI-användning. Modern AI kräver också experiment med synthetic data och data augmentation. Som coach guidar jag dig genom datastrategier som säkerställer robust AI-prestanda.`,
			Keywords:        []string{"data quality", "bias", "datadrift", "data governance", "synthetic data"},
			CoachingContext: "Hjälper utveckla datakvalitetsstrategi för AI-projekt",
		},
		{
			Title:           "AI Model Deployment Strategies",
			Category:        CATEGORY_IMPLEMENTATION,
			Content:         `Att deploiera AI-modeller i production kräver överväganden av skalbarhet, latency, säkerhet och kostnader. Vanliga patterns inkluderar batch prediction, real-time serving, edge deployment och hybrid approaches. Containerisering med Docker/Kubernetes är standard, medan cloud platforms erbjuder managed services. A/B testing och gradual rollouts minimerar risker. Som coach hjälper jag dig välja deployment-strategi som matchar dina tekniska och affärsmässiga krav.`,
			Keywords:        []string{"model deployment", "Docker", "Kubernetes", "cloud", "A/B testing", "edge deployment"},
			CoachingContext: "Planerar säker och skalbar modell-deployment",
		},
	}
}

func affarsDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "AI ROI and Business Case Development",
			Category:        CATEGORY_AFFAR,
			Content:         `Att byggja business case för AI kräver tydlig koppling mellan tekniska möjligheter och affärsvärde. Fokusera på mätbara outcomes som kostnadsbesparing, intäktsökning eller effektivitetsförbättringar. Börja med pilotprojekt som har tydlig ROI och skalbarhetspotential. Inkludera kostnader för data, infrastruktur, talang och change management. Som coach hjälper jag dig identifiera high-impact AI use cases och bygga övertygande business cases.`,
			Keywords:        []string{"AI ROI", "business case", "pilotprojekt", "kostnadsbesparing", "effektivitet"},
			CoachingContext: "Stöttar utveckling av övertygande AI business cases",
		},
		{
			Title:           "AI Transformation Roadmap",
			Category:        CATEGORY_AFFAR,
			Content:         `Framgångsrik AI-transformation följer en strukturerad roadmap med fem faser: Assessment (nuläge), Strategy (vision och mål), Foundation (data och infrastruktur), Pilot (första projekt) och Scale (organisationsgemensam adoption). Varje fas har specifika milstones och success criteria. Critical success factors inkluderar ledarskapsstöd, rätt talang och change management. Som coach guidar jag dig genom att skapa en realistisk AI roadmap anpassad för din organisation.`,
			Keywords:        []string{"AI transformation", "roadmap", "assessment", "pilot", "scaling", "change management"},
			CoachingContext: "Utvecklar strukturerad AI-transformationsplan",
		},
		{
			Title:           "AI Maturity Assessment",
			Category:        CATEGORY_AFFAR,
			Content:         `AI-mognad mäts över flera dimensioner: Data (kvalitet, tillgänglighet, governance), Technology (infrastruktur, tools, integration), People (kompetens, roller, kultur), Process (metodiker, governance, säkerhet) och Strategy (vision, leadership, investment). Mognadsnivåer sträcker sig från Ad-hoc till Optimized. Regular assessment hjälper identifiera gaps och prioritera investeringar. Som coach hjälper jag dig bedöma nuvarande AI-mognad och planera targeted förbättringar.`,
			Keywords:        []string{"AI maturity", "assessment", "data governance", "infrastruktur", "kompetens"},
			CoachingContext: "Utvärderar och förbättrar organisationens AI-mognad",
		},
	}
}

func tekniskaDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "Python for AI/ML Development",
			Category:        CATEGORY_TEKNISK,
			Content:         `Python dominerar AI-utveckling tack vare kraftfulla bibliotek: NumPy/Pandas (databehandling), Scikit-learn (traditionell ML), TensorFlow/PyTorch (deep learning), Transformers (NLP) och OpenCV (computer vision). Utvecklingsmiljöer som Jupyter notebooks underlättar experimentation. Best practices inkluderar virtual environments, testing, dokumentation och kodkvalitet. Som coach hjälper jag dig bygga Python-kompetens strukturerat från grunderna till avancerade AI-tillämpningar.`,
			Keywords:        []string{"Python", "NumPy", "Pandas", "Scikit-learn", "TensorFlow", "PyTorch", "Jupyter"},
			CoachingContext: "Guidar Python-learning för AI-utveckling",
		},
		{
			Title:           "Cloud AI Services Strategy",
			Category:        CATEGORY_TEKNISK,
			Content:         `Molnleverantörer erbjuder managed AI-tjänster som accelererar implementation: AWS (SageMaker, Bedrock), Azure (Cognitive Services, ML Studio), GCP (Vertex AI, AutoML). Fördelar inkluderar reduced infrastructure management, pre-trained models och auto-scaling. Överväganden inkluderar vendor lock-in, kostnader och data sovereignty. Hybrid approaches kombinerar cloud services med on-premise deployment. Som coach hjälper jag dig välja optimal cloud AI-strategi.`,
			Keywords:        []string{"cloud AI", "AWS SageMaker", "Azure", "GCP", "managed services", "hybrid"},
			CoachingContext: "Planerar cloud AI-strategi baserat på organisationens behov",
		},
		{
			Title:           "Vector Databases and Embeddings",
			Category:        CATEGORY_TEKNISK,
			Content:         `Vector databases lagrar och söker i high-dimensional embeddings som representerar text, bilder eller andra data. Populära lösningar inkluderar Pinecone, Weaviate, ChromaDB och Milvus. De möjliggör semantic search, recommendation systems och RAG (Retrieval-Augmented Generation). Viktiga överväganden är embedding-kvalitet, index-performance och skalbarhet. Som coach hjälper jag dig förstå när vector databases är värdefulla och implementera dem effektivt.`,
			Keywords:        []string{"vector database", "embeddings", "Pinecone", "Weaviate", "ChromaDB", "semantic search", "RAG"},
			CoachingContext: "Implementerar vector search för AI-tillämpningar",
		},
	}
}

func framtidDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "Multimodal AI Revolution",
			Category:        CATEGORY_FRAMTID,
			Content:         `Multimodal AI kombinerar text, bilder, ljud och video i en enda modell, möjliggörandes mer naturliga interaktioner och rikare förståelse. GPT-4V, DALL-E 3 och kommande system visar potentialen. Tillämpningar inkluderar avancerade assistenter, kreativa verktyg och automatiserad innehållsanalys. Utmaningar inkluderar computational complexity och training data requirements. Som coach hjälper jag dig förstå multimodal möjligheter och planera för denna teknologiska shift.`,
			Keywords:        []string{"multimodal AI", "GPT-4V", "DALL-E", "text och bilder", "naturliga interaktioner"},
			CoachingContext: "Förbereder för multimodal AI-adoption",
		},
		{
			Title:           "Edge AI and On-Device Intelligence",
			Category:        CATEGORY_FRAMTID,
			Content:         `Edge AI flyttar AI-processing närmare användare genom on-device eller edge computing, vilket minskar latency, förbättrar privacy och reducerar bandwidthskrav. Möjliggörs av specialized chips (NPUs, TPUs) och model optimization techniques (quantization, pruning). Viktiga use cases inkluderar autonomous vehicles, smart cameras och IoT applications. Som coach guidar jag dig genom edge AI-strategier som balanserar performance, cost och privacy.`,
			Keywords:        []string{"edge AI", "on-device", "NPU", "TPU", "quantization", "IoT", "autonomous vehicles"},
			CoachingContext: "Planerar edge AI för decentraliserade tillämpningar",
		},
		{
			Title:           "AutoML and No-Code AI Platforms",
			Category:        CATEGORY_FRAMTID,
			Content:         `AutoML demokratiserar AI genom att automatisera model selection, hyperparameter tuning och architecture search. No-code platforms låter business users bygga AI-lösningar utan programmering. Exempel inkluderar Google AutoML, H2O.ai och Microsoft Power Platform AI Builder. Medan dessa verktyg ökar AI-tillgänglighet behövs fortfarande expertis för komplex problemlösning. Som coach hjälper jag dig avgöra när AutoML är lämpligt och hur det kompletterar traditional AI-utveckling.`,
			Keywords:        []string{"AutoML", "no-code AI", "Google AutoML", "H2O.ai", "Power Platform", "demokratisering"},
			CoachingContext: "Vägleder när och hur AutoML kan accelerera AI-adoption",
		},
	}
}

func sakerhetDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "AI Security Best Practices",
			Category:        CATEGORY_SAKERHET,
			Content:         `AI-säkerhet omfattar flera dimensioner: Model security (adversarial attacks, model stealing), Data security (privacy, encryption), Infrastructure security (secure deployment) och Operational security (monitoring, incident response). Vanliga hot inkluderar data poisoning, prompt injection och model inversion attacks. Best practices inkluderar robust training data validation, secure model serving, regular security audits och incident response plans. Som coach hjälper jag dig utveckla comprehensive AI security strategies.`,
			Keywords:        []string{"AI security", "adversarial attacks", "data poisoning", "prompt injection", "model serving"},
			CoachingContext: "Utvecklar robusta AI-säkerhetsstrategier",
		},
		{
			Title:           "GDPR and AI Compliance",
			Category:        CATEGORY_SAKERHET,
			Content:         `GDPR påverkar AI-system genom krav på transparency, user consent, data minimization och 'right to explanation'. AI-specifika utmaningar inkluderar automated decision-making, profiling och cross-border data transfers. Compliance strategies inkluderar privacy by design, impact assessments, clear consent mechanisms och audit trails. Emerging regulations som EU AI Act kräver additional considerations. Som coach guidar jag dig genom AI compliance-krav och praktisk implementering.`,
			Keywords:        []string{"GDPR", "AI compliance", "privacy by design", "automated decisions", "EU AI Act"},
			CoachingContext: "Säkerställer AI-compliance med dataskyddsregleringar",
		},
		{
			Title:           "Ethical AI and Bias Mitigation",
			Category:        CATEGORY_SAKERHET,
			Content:         `Ethical AI säkerställer fair, transparent och accountable AI-system. Vanliga bias-källor inkluderar training data, algorithm design och deployment context. Mitigation strategies inkluderar diverse teams, bias testing, fairness metrics och continuous monitoring. Frameworks som IEEE Ethical AI och Partnership on AI ger vägledning. Organisationer behöver clear AI ethics policies och governance structures. Som coach hjälper jag dig bygga ethical AI practices in i utvecklingsprocesser.`,
			Keywords:        []string{"ethical AI", "bias mitigation", "fairness metrics", "IEEE Ethical AI", "governance"},
			CoachingContext: "Implementerar ethical AI practices och bias mitigation",
		},
	}
}

func universitetDocs() []types.KnowledgeDocument {
	return []types.KnowledgeDocument{
		{
			Title:           "AI in Academic Research",
			Category:        CATEGORY_UNIVERSITET,
			Content:         `AI transformerar akademisk forskning genom automated literature reviews, hypothesis generation, experiment design och data analysis. Forskare använder AI för pattern discovery, simulation och predictive modeling. Interdisciplinary AI research växer inom områden som computational biology, digital humanities och climate science. Utmaningar inkluderar reproducibility, ethical considerations och researcher training. Som coach hjälper jag forskare integrera AI i sina forskningsprojekt på ett metodiskt och ansvarsfullt sätt.`,
			Keywords:        []string{"akademisk forskning", "literature reviews", "hypothesis generation", "reproducibility", "interdisciplinary"},
			CoachingContext: "Stöttar forskare i AI-integration för forskningsprojekt",
		},
		{
			Title:           "Learning Analytics and Educational AI",
			Category:        CATEGORY_UNIVERSITET,
			Content:         `Learning Analytics använder AI för att förstå och förbättra lärande genom analys av studentdata, learning patterns och educational outcomes. Tillämpningar inkluderar adaptive learning systems, automated assessment, early warning systems och personalized learning paths. Privacy och ethics är kritiska considerations när man arbetar med studentdata. Modern EdTech integrerar AI för enhanced learning experiences. Som coach guidar jag universitet genom responsible implementation av learning analytics.`,
			Keywords:        []string{"learning analytics", "studentdata", "adaptive learning", "automated assessment", "EdTech"},
			CoachingContext: "Implementerar learning analytics med fokus på student privacy",
		},
		{
			Title:           "University AI Governance Framework",
			Category:        CATEGORY_UNIVERSITET,
			Content:         `Universitet behöver comprehensive AI governance för att säkerställa responsible AI adoption. Framework inkluderar AI ethics committee, clear policies för AI use i forskning och undervisning, risk assessment procedures och stakeholder engagement processes. Viktiga områden är research integrity, student privacy, faculty training och vendor management. International collaboration och knowledge sharing accelererar best practice development. Som coach hjälper jag universitet utveckla robusta AI governance structures.`,
			Keywords:        []string{"AI governance", "ethics committee", "research integrity", "faculty training", "vendor management"},
			CoachingContext: "Utvecklar university-wide AI governance och policies",
		},
		{
			Title:           "Faculty AI Training and Support",
			Category:        CATEGORY_UNIVERSITET,
			Content:         `Framgångsrik universitets-AI kräver structured faculty development programs som bygger AI literacy och practical skills. Training ska täcka AI fundamentals, discipline-specific applications, ethical considerations och hands-on workshops. Support inkluderar AI champions network, regular seminars, access till AI tools och collaboration opportunities. Change management är critical för widespread adoption. Som coach designar jag comprehensive faculty AI training programs som accelererar adoption.`,
			Keywords:        []string{"faculty training", "AI literacy", "discipline-specific", "AI champions", "change management"},
			CoachingContext: "Designar effektiva faculty AI training program",
		},
	}
}
